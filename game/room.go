package game

import (
	"context"
	"sync"
	"time"
)

// playerSeat is one roster slot: wire connection plus the state every
// participant sees, plus the question only its owner sees.
type playerSeat struct {
	state     PlayerState
	conn      Player
	question  Question
	joinOrder int
}

type RoomJoinRequest struct {
	roomId  string
	player  Player
	errChan chan error
}

func NewRoomJoinRequest(roomId string, player Player) RoomJoinRequest {
	return RoomJoinRequest{roomId: roomId, player: player, errChan: make(chan error, 1)}
}

type room struct {
	// Identity / metadata
	id     string
	name   string
	hostId string
	status RoomStatus

	// Configuration, immutable after creation
	config RoomConfig

	// Runtime state, owned by the GameLoop goroutine
	seats       []*playerSeat // join order
	nextJoin    int
	deadline    time.Time // match end, zero until start
	supplier    QuestionSupplier
	parentLobby Lobby

	// Communication
	inbox       chan ClientPacketEnvelope
	joinReqs    chan RoomJoinRequest
	removeMe    chan Player
	ticks       chan time.Time
	pingPlayers chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

func (r *room) Id() string { return r.id }

func (r *room) SetId(id string) { r.id = id }

func (r *room) SetParentLobby(l Lobby) { r.parentLobby = l }

func (r *room) Description() RoomDescription {
	return RoomDescription{
		Id:           r.id,
		Name:         r.name,
		PlayersCount: len(r.seats),
		MaxPlayers:   r.config.MaxPlayers,
		Status:       r.status,
		IsPublic:     r.config.IsPublic,
	}
}

// Send queues an inbound packet for serialized processing.
func (r *room) Send(ctx context.Context, e ClientPacketEnvelope) {
	select {
	case r.inbox <- e:
	case <-ctx.Done():
	case <-r.done:
	}
}

func (r *room) RemoveMe(ctx context.Context, p Player) {
	select {
	case r.removeMe <- p:
	case <-ctx.Done():
	case <-r.done:
	}
}

func (r *room) RequestJoin(jreq RoomJoinRequest) {
	select {
	case r.joinReqs <- jreq:
	case <-r.done:
		jreq.errChan <- ErrRoomNotFound
	}
}

// Tick never blocks; a room that is busy simply skips a beat.
func (r *room) Tick(now time.Time) {
	select {
	case r.ticks <- now:
	default:
	}
}

func (r *room) PingPlayers() {
	select {
	case r.pingPlayers <- struct{}{}:
	default:
	}
}

// CloseAndRelease shuts the actor down. Closing ticks and pingPlayers makes
// the GameLoop return; it releases the players itself on the way out.
func (r *room) CloseAndRelease() {
	r.closeOnce.Do(func() {
		close(r.done)
		close(r.ticks)
		close(r.pingPlayers)
	})
}
