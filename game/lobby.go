package game

import (
	"context"
	"log/slog"
	"time"
)

type lobby struct {
	rooms                map[string]Room
	pubRoomsDescriptions map[string]RoomDescription

	addRoomChan    chan Room
	removeRoomChan chan string
	pubGamesReq    chan chan []RoomDescription
	roomDescUpdate chan RoomDescription
	joinRoomReq    chan RoomJoinRequest

	idGenerator   UniqueIdGenerator
	tickerCreator PeriodicTickerChannelCreator
}

func NewLobby(idgen UniqueIdGenerator, tickerCreator PeriodicTickerChannelCreator) *lobby {
	return &lobby{
		rooms:                map[string]Room{},
		pubRoomsDescriptions: map[string]RoomDescription{},
		addRoomChan:          make(chan Room, 32),
		removeRoomChan:       make(chan string, 32),
		pubGamesReq:          make(chan chan []RoomDescription, 256),
		roomDescUpdate:       make(chan RoomDescription, 256),
		joinRoomReq:          make(chan RoomJoinRequest, 256),
		idGenerator:          idgen,
		tickerCreator:        tickerCreator,
	}
}

func (l *lobby) RequestAddAndRunRoom(ctx context.Context, r Room) {
	select {
	case l.addRoomChan <- r:
	case <-ctx.Done():
	}
}

func (l *lobby) ForwardPlayerJoinRequestToRoom(ctx context.Context, jreq RoomJoinRequest) {
	select {
	case l.joinRoomReq <- jreq:
	case <-ctx.Done():
	}
}

func (l *lobby) RequestUpdateDescription(desc RoomDescription) {
	select {
	case l.roomDescUpdate <- desc:
	default:
	}
}

func (l *lobby) RemoveRoom(roomId string) {
	l.removeRoomChan <- roomId
}

func (l *lobby) GetPublicRooms(ctx context.Context) []RoomDescription {
	respChan := make(chan []RoomDescription, 1)
	select {
	case l.pubGamesReq <- respChan:
		select {
		case resp := <-respChan:
			return resp
		case <-ctx.Done():
			return nil
		}
	case <-ctx.Done():
		return nil
	}
}

// LobbyActor owns the room collection. Nothing else touches the maps.
func (l *lobby) LobbyActor(started chan struct{}) {
	ticker := l.tickerCreator.Create(time.Second)
	pingTicker := l.tickerCreator.Create(time.Second * 30)

	close(started)

	for {
		select {
		case now := <-ticker:
			for _, r := range l.rooms {
				r.Tick(now)
			}

		case <-pingTicker:
			for _, r := range l.rooms {
				r.PingPlayers()
			}

		case room := <-l.addRoomChan:
			l.handleAddAndRunRoom(room)

		case roomId := <-l.removeRoomChan:
			l.handleRemoveRoom(roomId)

		case desc := <-l.roomDescUpdate:
			if _, ok := l.pubRoomsDescriptions[desc.Id]; ok {
				l.pubRoomsDescriptions[desc.Id] = desc
			}

		case pubGamesReq := <-l.pubGamesReq:
			l.handleGetPublicRoomsDescription(pubGamesReq)

		case joinReq := <-l.joinRoomReq:
			l.handleJoinReq(joinReq)
		}
	}
}

func (l *lobby) handleAddAndRunRoom(r Room) {
	id := l.idGenerator.Generate()
	r.SetParentLobby(l)
	r.SetId(id)

	l.rooms[id] = r
	go r.GameLoop()

	desc := r.Description()
	if desc.IsPublic {
		l.pubRoomsDescriptions[id] = desc
	}

	slog.Info("room created", "room_id", id, "public", desc.IsPublic)
}

func (l *lobby) handleRemoveRoom(toRemoveId string) {
	room, ok := l.rooms[toRemoveId]
	if !ok {
		return
	}
	delete(l.rooms, toRemoveId)
	delete(l.pubRoomsDescriptions, toRemoveId)
	room.CloseAndRelease()
	l.idGenerator.Dispose(toRemoveId)

	slog.Info("room removed", "room_id", toRemoveId)
}

// Only rooms still accepting joins are discoverable.
func (l *lobby) handleGetPublicRoomsDescription(req chan []RoomDescription) {
	x := make([]RoomDescription, 0, len(l.pubRoomsDescriptions))
	for _, description := range l.pubRoomsDescriptions {
		if description.Status == STATUS_WAITING {
			x = append(x, description)
		}
	}
	req <- x
}

func (l *lobby) handleJoinReq(joinReq RoomJoinRequest) {
	room, ok := l.rooms[joinReq.roomId]
	if !ok {
		joinReq.errChan <- ErrRoomNotFound
		return
	}
	room.RequestJoin(joinReq)
}
