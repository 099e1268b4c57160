package user

import "strings"

// avatarMap pairs known usernames with their uploaded avatar files.
var avatarMap = map[string]string{
	"admin121": "avatars/admin121.jpg",
	"ann":      "avatars/ann.jpg",
	"day1711":  "avatars/day1711.jpg",
	"day2111":  "avatars/day2111.jpg",
	"day512":   "avatars/day512.jpg",
	"hihi":     "avatars/hihi.jpg",
	"khoi":     "avatars/khoi.jpg",
	"kien":     "avatars/kien.jpg",
	"loiuser":  "avatars/loiuser.jpg",
}

var defaultAvatars = []string{
	"avatars/avatar1.png",
	"avatars/avatar2.png",
	"avatars/avatar3.png",
	"avatars/avatar4.png",
	"avatars/avatar5.png",
	"avatars/avatar6.png",
	"avatars/avatar7.png",
	"avatars/avatar8.png",
	"avatars/avatar9.png",
	"avatars/avatar10.png",
}

// AvatarFor resolves the avatar for a username: a case-insensitive exact
// match against the uploaded set first, then a stock avatar chosen by
// hashing the username so the same user always gets the same fallback.
func AvatarFor(username string) string {
	if username == "" {
		return defaultAvatars[0]
	}
	if path, ok := avatarMap[strings.ToLower(username)]; ok {
		return path
	}
	hash := 0
	for _, ch := range username {
		hash += int(ch)
	}
	return defaultAvatars[hash%len(defaultAvatars)]
}
