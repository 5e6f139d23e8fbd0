package game

type RoomStatus string

const (
	STATUS_WAITING     RoomStatus = "waiting"
	STATUS_IN_PROGRESS RoomStatus = "in_progress"
	STATUS_FINISHED    RoomStatus = "finished"
)

type ActionType string

const (
	ACTION_ATTACK ActionType = "attack"
	ACTION_HEAL   ActionType = "heal"
)

type Difficulty string

const (
	DIFFICULTY_EASY   Difficulty = "easy"
	DIFFICULTY_MEDIUM Difficulty = "medium"
	DIFFICULTY_HARD   Difficulty = "hard"
)

// --- Game Constants ---
const MAX_HEALTH = 100        // Every player starts a match with this much health.
const SCORE_PER_CORRECT = 100 // Score awarded for each correctly answered question.
const MAX_ROOM_PLAYERS = 20   // Hard ceiling regardless of the room's own maxPlayers.

type RoomConfig struct {
	TimeLimit          int        `json:"timeLimit"` // seconds, whole match
	Difficulty         Difficulty `json:"difficulty"`
	MaxPlayers         int        `json:"maxPlayers"`
	AttackDamage       int        `json:"attackDamage"`
	HealAmount         int        `json:"healAmount"`
	WrongAnswerPenalty int        `json:"wrongAnswerPenalty"`
	IsPublic           bool       `json:"isPublic"`
	AllowAllyHeal      bool       `json:"allowAllyHeal"`
}

// Question keeps the expected answer server side. Only QuestionView ever
// crosses the wire.
type Question struct {
	Id         string
	Equation   []string // display tokens, blanks rendered as "?"
	Difficulty Difficulty
	Answer     []float64 // one value per blank, in equation order
}

type QuestionView struct {
	Id         string     `json:"id"`
	Equation   []string   `json:"equation"`
	Difficulty Difficulty `json:"difficulty"`
}

func (q Question) View() QuestionView {
	return QuestionView{Id: q.Id, Equation: q.Equation, Difficulty: q.Difficulty}
}

type PlayerAnswer struct {
	Timestamp  int64     `json:"timestamp"`
	SocketId   string    `json:"socketId,omitempty"`
	QuestionId string    `json:"questionId"`
	Answer     []float64 `json:"answer"`
	TimeSpent  float64   `json:"timeSpent"` // seconds
}

type PlayerAction struct {
	Timestamp      int64      `json:"timestamp"`
	SocketId       string     `json:"socketId,omitempty"`
	Type           ActionType `json:"type"`
	SourcePlayerId string     `json:"sourcePlayerId"`
	TargetPlayerId string     `json:"targetPlayerId"`
	Value          int        `json:"value"`
}

type PlayerState struct {
	Id                   string `json:"id"`
	AvatarId             int    `json:"avatarId"`
	Username             string `json:"username"`
	Health               int    `json:"health"`
	Score                int    `json:"score"`
	CurrentQuestionIndex int    `json:"currentQuestionIndex"`
	IsHost               bool   `json:"isHost"`
	Eliminated           bool   `json:"eliminated"`
}

type LeaderboardEntry struct {
	PlayerId string `json:"playerId"`
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type RoomSnapshot struct {
	Id      string        `json:"id"`
	Name    string        `json:"name"`
	HostId  string        `json:"hostId"`
	Players []PlayerState `json:"players"`
	Config  RoomConfig    `json:"config"`
	Status  RoomStatus    `json:"status"`
}

type RoomDescription struct {
	Id           string     `json:"id"`
	Name         string     `json:"name"`
	PlayersCount int        `json:"playersCount"`
	MaxPlayers   int        `json:"maxPlayers"`
	Status       RoomStatus `json:"status"`
	IsPublic     bool       `json:"-"`
}
