package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrNotSignedIn     = errors.New("not signed in")
	ErrRoomNotFound    = errors.New("no room matches the elapsed days")
	ErrNoteTooLong     = errors.New("journal note exceeds 1000 characters")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrMessageTooLong  = errors.New("message exceeds 2000 characters")
	ErrMessageEmpty    = errors.New("message is empty")
	ErrUserMuted       = errors.New("user is muted")
	ErrUserBanned      = errors.New("user is banned")
	ErrNotRoomMember   = errors.New("not a member of this room")
)
