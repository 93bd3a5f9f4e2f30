package service

import (
	"strings"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/internal/util"
)

type ChatRoomRepo interface {
	ListOrdered() ([]model.Room, error)
	FindByID(id string) (*model.Room, error)
	Join(roomID string, userID uint) error
	Membership(userID uint) (*model.RoomMember, error)
}

type ChatMessageRepo interface {
	Create(msg *model.Message) error
	FindRecentByRoom(roomID string, limit int, includeHidden bool) ([]model.Message, error)
	FindByID(id string) (*model.Message, error)
	SetHidden(id string, hidden bool) error
}

type ChatUserRepo interface {
	FindByID(id uint) (*model.User, error)
}

// ChatService handles the cohort chat: room resolution, exclusive joins
// and message history/sending. Realtime push is the hub's job; the
// controller hands stored messages to it.
type ChatService struct {
	Rooms    ChatRoomRepo
	Messages ChatMessageRepo
	Users    ChatUserRepo
}

func NewChatService(rooms ChatRoomRepo, messages ChatMessageRepo, users ChatUserRepo) *ChatService {
	return &ChatService{Rooms: rooms, Messages: messages, Users: users}
}

// RoomForDays resolves the cohort room for an elapsed-day count.
func (s *ChatService) RoomForDays(days int) (*model.Room, error) {
	rooms, err := s.Rooms.ListOrdered()
	if err != nil {
		return nil, err
	}
	room := streak.RoomForDays(days, rooms)
	if room == nil {
		return nil, util.ErrRoomNotFound
	}
	return room, nil
}

// JoinForDays resolves the room for the day count and switches the user's
// exclusive membership to it. Re-run on each chat screen visit; there is
// no automatic re-evaluation in between.
func (s *ChatService) JoinForDays(userID uint, days int) (*model.Room, error) {
	room, err := s.RoomForDays(days)
	if err != nil {
		return nil, err
	}
	if err := s.Rooms.Join(room.ID, userID); err != nil {
		return nil, err
	}
	return room, nil
}

// History returns the latest messages of a room in chronological order.
func (s *ChatService) History(roomID string, limit int, includeHidden bool) ([]model.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Messages.FindRecentByRoom(roomID, limit, includeHidden)
}

// Send validates and stores a message. clientMsgID is an optional
// client-generated correlation id persisted with the row and echoed in
// the push event, so clients reconcile their optimistic copy by id.
func (s *ChatService) Send(userID uint, roomID, content, clientMsgID string) (*model.Message, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.Banned {
		return nil, util.ErrUserBanned
	}
	if user.Muted {
		return nil, util.ErrUserMuted
	}

	content = strings.TrimSpace(util.Sanitize(content))
	if content == "" {
		return nil, util.ErrMessageEmpty
	}
	if len([]rune(content)) > model.MaxMessageLen {
		return nil, util.ErrMessageTooLong
	}

	membership, err := s.Rooms.Membership(userID)
	if err != nil || membership.RoomID != roomID {
		return nil, util.ErrNotRoomMember
	}

	msg := &model.Message{
		RoomID:      roomID,
		SenderID:    userID,
		Content:     content,
		ClientMsgID: clientMsgID,
	}
	if err := s.Messages.Create(msg); err != nil {
		return nil, err
	}
	msg.Sender = *user
	return msg, nil
}

// Hide soft-hides or unhides a message; the row itself is immutable.
func (s *ChatService) Hide(messageID string, hidden bool) error {
	if _, err := s.Messages.FindByID(messageID); err != nil {
		return err
	}
	return s.Messages.SetHidden(messageID, hidden)
}
