package game

import (
	"context"
	"time"
)

type WebsocketConnection interface {
	Close()
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

type Player interface {
	Id() string
	Username() string
	AvatarId() int
	Send(data []byte) error
	Ping() error
	SetRoom(r Room)
	CancelAndRelease()
}

type Room interface {
	Send(ctx context.Context, e ClientPacketEnvelope)
	RemoveMe(ctx context.Context, p Player)
	RequestJoin(jreq RoomJoinRequest)
	Tick(now time.Time)
	PingPlayers()
	GameLoop()
	CloseAndRelease()
	Description() RoomDescription
	SetParentLobby(l Lobby)
	SetId(id string)
	Id() string
}

type Lobby interface {
	RequestAddAndRunRoom(ctx context.Context, r Room)
	ForwardPlayerJoinRequestToRoom(ctx context.Context, jreq RoomJoinRequest)
	RequestUpdateDescription(desc RoomDescription)
	RemoveRoom(roomId string)
	GetPublicRooms(ctx context.Context) []RoomDescription
}

// QuestionSupplier is the boundary to question content. The engine only ever
// asks for the next question at a difficulty.
type QuestionSupplier interface {
	Next(difficulty Difficulty) (Question, error)
}

type UniqueIdGenerator interface {
	Generate() string
	Dispose(id string)
}

type PeriodicTickerChannelCreator interface {
	Create(duration time.Duration) <-chan time.Time
}
