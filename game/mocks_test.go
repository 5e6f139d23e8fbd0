package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- WebsocketConnection ---

type MockWebsocketConnection struct {
	mock.Mock
}

func (m *MockWebsocketConnection) Close() {
	m.Called()
}

func (m *MockWebsocketConnection) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockWebsocketConnection) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockWebsocketConnection) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- QuestionSupplier ---

type MockQuestionSupplier struct {
	mock.Mock
}

func (m *MockQuestionSupplier) Next(difficulty Difficulty) (Question, error) {
	args := m.Called(difficulty)
	return args.Get(0).(Question), args.Error(1)
}

// --- UniqueIdGenerator ---

type MockUniqueIdGenerator struct {
	mock.Mock
}

func (m *MockUniqueIdGenerator) Generate() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockUniqueIdGenerator) Dispose(id string) {
	m.Called(id)
}

// --- PeriodicTickerChannelCreator ---

type MockPeriodicTickerChannelCreator struct {
	mock.Mock
}

func (m *MockPeriodicTickerChannelCreator) Create(duration time.Duration) <-chan time.Time {
	args := m.Called(duration)
	return args.Get(0).(chan time.Time)
}

// --- Room ---

type MockRoom struct {
	mock.Mock
}

func (m *MockRoom) PingPlayers() {
	m.Called()
}

func (m *MockRoom) Send(ctx context.Context, e ClientPacketEnvelope) {
	m.Called(ctx, e)
}

func (m *MockRoom) RemoveMe(ctx context.Context, p Player) {
	m.Called(ctx, p)
}

func (m *MockRoom) RequestJoin(jreq RoomJoinRequest) {
	m.Called(jreq)
}

func (m *MockRoom) Tick(now time.Time) {
	m.Called(now)
}

func (m *MockRoom) GameLoop() {
	m.Called()
}

func (m *MockRoom) CloseAndRelease() {
	m.Called()
}

func (m *MockRoom) Description() RoomDescription {
	args := m.Called()
	return args.Get(0).(RoomDescription)
}

func (m *MockRoom) SetParentLobby(l Lobby) {
	m.Called(l)
}

func (m *MockRoom) SetId(id string) {
	m.Called(id)
}

func (m *MockRoom) Id() string {
	args := m.Called()
	return args.String(0)
}

// --- Lobby ---

type MockLobby struct {
	mock.Mock
}

func (m *MockLobby) RequestAddAndRunRoom(ctx context.Context, r Room) {
	m.Called(ctx, r)
}

func (m *MockLobby) ForwardPlayerJoinRequestToRoom(ctx context.Context, jreq RoomJoinRequest) {
	m.Called(ctx, jreq)
}

func (m *MockLobby) RequestUpdateDescription(desc RoomDescription) {
	m.Called(desc)
}

func (m *MockLobby) RemoveRoom(roomId string) {
	m.Called(roomId)
}

func (m *MockLobby) GetPublicRooms(ctx context.Context) []RoomDescription {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]RoomDescription)
}

// --- Player (packet recorder) ---

// recorderPlayer satisfies Player and keeps every packet sent to it, decoded,
// so scenario tests can assert on what each participant saw.
type recorderPlayer struct {
	id       string
	username string
	avatarId int
	room     Room
	released bool
	pinged   int
	sent     []*ServerPacket
}

func newRecorderPlayer(id, username string) *recorderPlayer {
	return &recorderPlayer{id: id, username: username}
}

func (p *recorderPlayer) Id() string       { return p.id }
func (p *recorderPlayer) Username() string { return p.username }
func (p *recorderPlayer) AvatarId() int    { return p.avatarId }

func (p *recorderPlayer) Send(data []byte) error {
	packet := &ServerPacket{}
	if err := json.Unmarshal(data, packet); err != nil {
		return err
	}
	p.sent = append(p.sent, packet)
	return nil
}

func (p *recorderPlayer) Ping() error {
	p.pinged++
	return nil
}

func (p *recorderPlayer) SetRoom(r Room) { p.room = r }

func (p *recorderPlayer) CancelAndRelease() { p.released = true }

func (p *recorderPlayer) packetsOfType(packetType string) []*ServerPacket {
	var out []*ServerPacket
	for _, packet := range p.sent {
		if packet.Type == packetType {
			out = append(out, packet)
		}
	}
	return out
}

func (p *recorderPlayer) lastOfType(packetType string) *ServerPacket {
	packets := p.packetsOfType(packetType)
	if len(packets) == 0 {
		return nil
	}
	return packets[len(packets)-1]
}

func (p *recorderPlayer) clear() { p.sent = nil }
