package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/internal/util"
)

type memChatRooms struct {
	rooms   []model.Room
	members map[uint]string
}

func newMemChatRooms() *memChatRooms {
	rooms := streak.DefaultRooms()
	for i := range rooms {
		rooms[i].ID = fmt.Sprintf("room-%d", i)
	}
	return &memChatRooms{rooms: rooms, members: make(map[uint]string)}
}

func (r *memChatRooms) ListOrdered() ([]model.Room, error) {
	return r.rooms, nil
}

func (r *memChatRooms) FindByID(id string) (*model.Room, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			return &r.rooms[i], nil
		}
	}
	return nil, util.ErrRoomNotFound
}

func (r *memChatRooms) Join(roomID string, userID uint) error {
	r.members[userID] = roomID
	return nil
}

func (r *memChatRooms) Membership(userID uint) (*model.RoomMember, error) {
	roomID, ok := r.members[userID]
	if !ok {
		return nil, errors.New("no membership")
	}
	return &model.RoomMember{UserID: userID, RoomID: roomID}, nil
}

type memChatMessages struct {
	msgs []model.Message
}

func (r *memChatMessages) Create(msg *model.Message) error {
	msg.ID = fmt.Sprintf("msg-%d", len(r.msgs))
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *memChatMessages) FindRecentByRoom(roomID string, limit int, includeHidden bool) ([]model.Message, error) {
	var out []model.Message
	for _, m := range r.msgs {
		if m.RoomID != roomID {
			continue
		}
		if m.Hidden && !includeHidden {
			continue
		}
		out = append(out, m)
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *memChatMessages) FindByID(id string) (*model.Message, error) {
	for i := range r.msgs {
		if r.msgs[i].ID == id {
			return &r.msgs[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *memChatMessages) SetHidden(id string, hidden bool) error {
	for i := range r.msgs {
		if r.msgs[i].ID == id {
			r.msgs[i].Hidden = hidden
			return nil
		}
	}
	return errors.New("not found")
}

type memChatUsers struct {
	users map[uint]*model.User
}

func (r *memChatUsers) FindByID(id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func newChatService() (*ChatService, *memChatRooms, *memChatMessages, *memChatUsers) {
	rooms := newMemChatRooms()
	messages := &memChatMessages{}
	users := &memChatUsers{users: map[uint]*model.User{
		1: {BaseModel: model.BaseModel{ID: 1}, DisplayName: "alice"},
		2: {BaseModel: model.BaseModel{ID: 2}, DisplayName: "bob", Muted: true},
		3: {BaseModel: model.BaseModel{ID: 3}, DisplayName: "mallory", Banned: true},
	}}
	return NewChatService(rooms, messages, users), rooms, messages, users
}

func TestJoinForDaysIsExclusive(t *testing.T) {
	svc, rooms, _, _ := newChatService()

	first, err := svc.JoinForDays(1, 0)
	if err != nil {
		t.Fatalf("JoinForDays day 0: %v", err)
	}

	// Moving to a later cohort replaces, never accumulates, membership.
	second, err := svc.JoinForDays(1, 30)
	if err != nil {
		t.Fatalf("JoinForDays day 30: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("day 0 and day 30 resolved to the same room")
	}
	if got := rooms.members[1]; got != second.ID {
		t.Errorf("membership = %s, want %s", got, second.ID)
	}
	if len(rooms.members) != 1 {
		t.Errorf("membership rows = %d, want 1", len(rooms.members))
	}
}

func TestSendStoresMessageWithClientID(t *testing.T) {
	svc, _, messages, _ := newChatService()

	room, err := svc.JoinForDays(1, 5)
	if err != nil {
		t.Fatalf("JoinForDays: %v", err)
	}

	msg, err := svc.Send(1, room.ID, "  hello there  ", "client-abc")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.Content != "hello there" {
		t.Errorf("Content = %q, want trimmed text", msg.Content)
	}
	if msg.ClientMsgID != "client-abc" {
		t.Errorf("ClientMsgID = %q, want client-abc", msg.ClientMsgID)
	}
	if msg.Sender.DisplayName != "alice" {
		t.Errorf("Sender = %q, want preloaded sender", msg.Sender.DisplayName)
	}
	if len(messages.msgs) != 1 {
		t.Errorf("stored messages = %d, want 1", len(messages.msgs))
	}
}

func TestSendValidation(t *testing.T) {
	svc, _, _, _ := newChatService()

	room, err := svc.JoinForDays(1, 5)
	if err != nil {
		t.Fatalf("JoinForDays: %v", err)
	}
	if _, err := svc.JoinForDays(2, 5); err != nil {
		t.Fatalf("JoinForDays muted user: %v", err)
	}
	if _, err := svc.JoinForDays(3, 5); err != nil {
		t.Fatalf("JoinForDays banned user: %v", err)
	}

	tests := []struct {
		name    string
		userID  uint
		content string
		wantErr error
	}{
		{"empty", 1, "   ", util.ErrMessageEmpty},
		{"markup only", 1, "<script>alert(1)</script>", util.ErrMessageEmpty},
		{"too long", 1, strings.Repeat("x", model.MaxMessageLen+1), util.ErrMessageTooLong},
		{"muted", 2, "hi", util.ErrUserMuted},
		{"banned", 3, "hi", util.ErrUserBanned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Send(tt.userID, room.ID, tt.content, ""); !errors.Is(err, tt.wantErr) {
				t.Errorf("Send error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSendRequiresMembership(t *testing.T) {
	svc, rooms, _, _ := newChatService()

	// User 1 sits in the day-5 room but posts to the day-90 one.
	member, err := svc.JoinForDays(1, 5)
	if err != nil {
		t.Fatalf("JoinForDays: %v", err)
	}
	other := streak.RoomForDays(100, rooms.rooms)
	if other == nil || other.ID == member.ID {
		t.Fatal("test rooms not distinct")
	}

	if _, err := svc.Send(1, other.ID, "hi", ""); !errors.Is(err, util.ErrNotRoomMember) {
		t.Errorf("Send to foreign room error = %v, want ErrNotRoomMember", err)
	}
}

func TestHideFiltersHistory(t *testing.T) {
	svc, _, messages, _ := newChatService()

	room, err := svc.JoinForDays(1, 5)
	if err != nil {
		t.Fatalf("JoinForDays: %v", err)
	}
	visible, err := svc.Send(1, room.ID, "keep me", "")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	hiddenMsg, err := svc.Send(1, room.ID, "hide me", "")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if err := svc.Hide(hiddenMsg.ID, true); err != nil {
		t.Fatalf("Hide: %v", err)
	}

	history, err := svc.History(room.ID, 50, false)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].ID != visible.ID {
		t.Errorf("history = %d messages, want only the visible one", len(history))
	}

	// Admins see hidden rows too.
	all, err := svc.History(room.ID, 50, true)
	if err != nil {
		t.Fatalf("History includeHidden: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin history = %d messages, want 2", len(all))
	}

	// The row survives hiding; only its visibility changed.
	if stored, _ := messages.FindByID(hiddenMsg.ID); stored == nil || !stored.Hidden {
		t.Error("hidden message row missing or not flagged")
	}
}
