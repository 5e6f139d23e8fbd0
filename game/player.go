package game

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/time/rate"
)

const playerOutboxSize = 256

type player struct {
	id          string
	username    string
	avatarId    int
	rateLimiter *rate.Limiter
	outbox      chan []byte
	pingChan    chan struct{}
	room        Room
	ctx         context.Context
	cancelCtx   context.CancelFunc
	releaseOnce sync.Once
}

func NewPlayer(id, username string, avatarId int) *player {
	ctx, cancel := context.WithCancel(context.Background())
	return &player{
		id:          id,
		username:    username,
		avatarId:    avatarId,
		rateLimiter: rate.NewLimiter(5, 10),
		outbox:      make(chan []byte, playerOutboxSize),
		pingChan:    make(chan struct{}, 1),
		ctx:         ctx,
		cancelCtx:   cancel,
	}
}

func (p *player) Id() string       { return p.id }
func (p *player) Username() string { return p.username }
func (p *player) AvatarId() int    { return p.avatarId }

func (p *player) SetRoom(r Room) {
	p.room = r
}

// Send enqueues data for the write pump. It never blocks: a client that
// cannot keep up loses packets rather than stalling the room actor.
func (p *player) Send(data []byte) error {
	select {
	case p.outbox <- data:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	default:
		return ErrSendBufferFull
	}
}

func (p *player) Ping() error {
	select {
	case p.pingChan <- struct{}{}:
	default:
	}
	return nil
}

// CancelAndRelease stops both pumps. Only the room actor calls it, so no
// Send can race the outbox close.
func (p *player) CancelAndRelease() {
	p.releaseOnce.Do(func() {
		p.cancelCtx()
		close(p.outbox)
		close(p.pingChan)
	})
}

func (p *player) ReadPump(socket WebsocketConnection) {
	defer socket.Close()

	for {
		data, err := socket.Read()
		if err != nil {
			break
		}

		if !p.rateLimiter.Allow() {
			continue
		}

		packet := &ClientPacket{}
		if err := json.Unmarshal(data, packet); err != nil {
			continue
		}

		p.room.Send(p.ctx, ClientPacketEnvelope{clientPacket: packet, from: p})
	}

	p.room.RemoveMe(p.ctx, p)
}

// WritePump closes the socket on exit so a released player's ReadPump
// unblocks and removes itself from the room.
func (p *player) WritePump(socket WebsocketConnection) {
	defer socket.Close()
loop:
	for {
		select {
		case data, ok := <-p.outbox:
			if !ok {
				break loop
			}
			if err := socket.Write(data); err != nil {
				break loop
			}
		case _, ok := <-p.pingChan:
			if !ok {
				break loop
			}
			if err := socket.Ping(); err != nil {
				break loop
			}
		}
	}
}
