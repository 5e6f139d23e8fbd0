package game

import "encoding/json"

// Inbound packet kinds.
const (
	PACKET_LEAVE         = "leave"
	PACKET_START         = "start"
	PACKET_SUBMIT_ANSWER = "submitAnswer"
	PACKET_SUBMIT_ACTION = "submitAction"
)

// Outbound packet kinds.
const (
	PACKET_ROOM_STATE      = "roomState"
	PACKET_PLAYER_JOINED   = "playerJoined"
	PACKET_PLAYER_LEFT     = "playerLeft"
	PACKET_QUESTION_ISSUED = "questionIssued"
	PACKET_ANSWER_RESULT   = "answerResult"
	PACKET_ACTION_APPLIED  = "actionApplied"
	PACKET_LEADERBOARD     = "leaderboard"
	PACKET_ROOM_FINISHED   = "roomFinished"
	PACKET_ERROR           = "error"
)

// ClientPacket is the tagged union of everything a connection may send after
// joining. Exactly one payload field is set, matching Type.
type ClientPacket struct {
	Type   string        `json:"type"`
	Answer *PlayerAnswer `json:"answer,omitempty"`
	Action *PlayerAction `json:"action,omitempty"`
}

type ClientPacketEnvelope struct {
	clientPacket *ClientPacket
	from         Player
}

type AnswerResultPayload struct {
	PlayerId  string `json:"playerId"`
	IsCorrect bool   `json:"isCorrect"`
	Health    int    `json:"health"`
}

type ActionAppliedPayload struct {
	Action          PlayerAction `json:"action"`
	ResultingHealth int          `json:"resultingHealth"`
}

type QuestionIssuedPayload struct {
	PlayerId string       `json:"playerId"`
	Question QuestionView `json:"question"`
}

type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ServerPacket is the tagged union of everything the room pushes out. Only
// the field matching Type is set.
type ServerPacket struct {
	Type        string                 `json:"type"`
	Room        *RoomSnapshot          `json:"room,omitempty"`
	Player      *PlayerState           `json:"player,omitempty"`
	PlayerId    string                 `json:"playerId,omitempty"`
	Question    *QuestionIssuedPayload `json:"question,omitempty"`
	Answer      *AnswerResultPayload   `json:"answer,omitempty"`
	Action      *ActionAppliedPayload  `json:"action,omitempty"`
	Leaderboard []LeaderboardEntry     `json:"leaderboard,omitempty"`
	Error       *ErrorPayload          `json:"error,omitempty"`
}

func (sp *ServerPacket) Marshal() []byte {
	data, err := json.Marshal(sp)
	if err != nil {
		// Every payload type above is marshalable; reaching this is a bug.
		panic(err)
	}
	return data
}

func MakePacketRoomState(snapshot RoomSnapshot) *ServerPacket {
	return &ServerPacket{Type: PACKET_ROOM_STATE, Room: &snapshot}
}

func MakePacketPlayerJoined(state PlayerState) *ServerPacket {
	return &ServerPacket{Type: PACKET_PLAYER_JOINED, Player: &state}
}

func MakePacketPlayerLeft(playerId string) *ServerPacket {
	return &ServerPacket{Type: PACKET_PLAYER_LEFT, PlayerId: playerId}
}

func MakePacketQuestionIssued(playerId string, question QuestionView) *ServerPacket {
	return &ServerPacket{
		Type:     PACKET_QUESTION_ISSUED,
		Question: &QuestionIssuedPayload{PlayerId: playerId, Question: question},
	}
}

func MakePacketAnswerResult(playerId string, isCorrect bool, health int) *ServerPacket {
	return &ServerPacket{
		Type:   PACKET_ANSWER_RESULT,
		Answer: &AnswerResultPayload{PlayerId: playerId, IsCorrect: isCorrect, Health: health},
	}
}

func MakePacketActionApplied(action PlayerAction, resultingHealth int) *ServerPacket {
	return &ServerPacket{
		Type:   PACKET_ACTION_APPLIED,
		Action: &ActionAppliedPayload{Action: action, ResultingHealth: resultingHealth},
	}
}

func MakePacketLeaderboard(entries []LeaderboardEntry) *ServerPacket {
	return &ServerPacket{Type: PACKET_LEADERBOARD, Leaderboard: entries}
}

func MakePacketRoomFinished(entries []LeaderboardEntry) *ServerPacket {
	return &ServerPacket{Type: PACKET_ROOM_FINISHED, Leaderboard: entries}
}

func MakePacketError(err error) *ServerPacket {
	return &ServerPacket{
		Type:  PACKET_ERROR,
		Error: &ErrorPayload{Kind: err.Error(), Message: errorMessageFor(err)},
	}
}
