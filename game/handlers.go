package game

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type GameHandler struct {
	lobby    Lobby
	supplier QuestionSupplier
}

func NewGameHandler(lobby Lobby, supplier QuestionSupplier) *GameHandler {
	return &GameHandler{lobby: lobby, supplier: supplier}
}

type createRoomRequest struct {
	Name               string `form:"name"`
	Username           string `form:"username"`
	AvatarId           int    `form:"avatarId"`
	TimeLimit          int    `form:"timeLimit"`
	Difficulty         string `form:"difficulty"`
	MaxPlayers         int    `form:"maxPlayers"`
	AttackDamage       int    `form:"attackDamage"`
	HealAmount         int    `form:"healAmount"`
	WrongAnswerPenalty int    `form:"wrongAnswerPenalty"`
	Public             bool   `form:"public"`
	AllowAllyHeal      bool   `form:"allowAllyHeal"`
}

func (req createRoomRequest) validate() string {
	if req.Username == "" {
		return "username is required"
	}
	if req.TimeLimit < 1 {
		return "timeLimit must be at least 1 second"
	}
	if req.TimeLimit > 3600 {
		return "timeLimit cannot exceed 3600 seconds"
	}
	switch Difficulty(req.Difficulty) {
	case DIFFICULTY_EASY, DIFFICULTY_MEDIUM, DIFFICULTY_HARD:
	default:
		return "difficulty must be easy, medium or hard"
	}
	if req.MaxPlayers < 2 {
		return "maxPlayers must be at least 2"
	}
	if req.MaxPlayers > MAX_ROOM_PLAYERS {
		return fmt.Sprintf("maxPlayers cannot exceed %d", MAX_ROOM_PLAYERS)
	}
	if req.AttackDamage < 0 || req.AttackDamage > MAX_HEALTH {
		return fmt.Sprintf("attackDamage must be between 0 and %d", MAX_HEALTH)
	}
	if req.HealAmount < 0 || req.HealAmount > MAX_HEALTH {
		return fmt.Sprintf("healAmount must be between 0 and %d", MAX_HEALTH)
	}
	if req.WrongAnswerPenalty < 0 || req.WrongAnswerPenalty > MAX_HEALTH {
		return fmt.Sprintf("wrongAnswerPenalty must be between 0 and %d", MAX_HEALTH)
	}
	return ""
}

func (req createRoomRequest) config() RoomConfig {
	return RoomConfig{
		TimeLimit:          req.TimeLimit,
		Difficulty:         Difficulty(req.Difficulty),
		MaxPlayers:         req.MaxPlayers,
		AttackDamage:       req.AttackDamage,
		HealAmount:         req.HealAmount,
		WrongAnswerPenalty: req.WrongAnswerPenalty,
		IsPublic:           req.Public,
		AllowAllyHeal:      req.AllowAllyHeal,
	}
}

func newUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// PublicRoomsHandler lists joinable public rooms. Plain request/response,
// not part of the websocket stream.
func (h *GameHandler) PublicRoomsHandler(ctx *gin.Context) {
	rooms := h.lobby.GetPublicRooms(ctx.Request.Context())
	if rooms == nil {
		rooms = []RoomDescription{}
	}
	ctx.JSON(http.StatusOK, rooms)
}

// CreateRoomHandler validates the room configuration, upgrades the
// connection and seats the caller as host of a fresh room.
func (h *GameHandler) CreateRoomHandler(ctx *gin.Context) {
	req := createRoomRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-request-format"})
		return
	}
	if msg := req.validate(); msg != "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrInvalidConfig.Error(), "message": msg})
		return
	}
	if req.Name == "" {
		req.Name = req.Username + "'s room"
	}

	upgrader := newUpgrader()
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err, "ip", ctx.ClientIP())
		return
	}
	socket := NewGorillaWebSocketWrapper(conn)

	host := NewPlayer(uuid.NewString(), req.Username, req.AvatarId)
	room := NewRoom(req.Name, host, req.config(), h.supplier)
	h.lobby.RequestAddAndRunRoom(ctx.Request.Context(), room)

	go host.ReadPump(socket)
	go host.WritePump(socket)
}

// JoinRoomHandler upgrades the connection and forwards a join request to the
// owning room through the lobby. Rejections arrive as an error packet on the
// fresh socket, which is then closed.
func (h *GameHandler) JoinRoomHandler(ctx *gin.Context) {
	roomId := ctx.Param("roomid")
	username := ctx.Query("username")
	if username == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	avatarId := 0
	fmt.Sscanf(ctx.Query("avatarId"), "%d", &avatarId)

	upgrader := newUpgrader()
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err, "ip", ctx.ClientIP())
		return
	}
	socket := NewGorillaWebSocketWrapper(conn)

	p := NewPlayer(uuid.NewString(), username, avatarId)
	jreq := NewRoomJoinRequest(roomId, p)
	h.lobby.ForwardPlayerJoinRequestToRoom(ctx.Request.Context(), jreq)

	select {
	case err := <-jreq.errChan:
		if err != nil {
			socket.Write(MakePacketError(err).Marshal())
			socket.Close()
			return
		}
	case <-ctx.Request.Context().Done():
		socket.Close()
		return
	}

	go p.ReadPump(socket)
	go p.WritePump(socket)
}

func RegisterRoutes(r *gin.Engine, h *GameHandler) {
	r.GET("/rooms", h.PublicRoomsHandler)
	r.GET("/create", h.CreateRoomHandler)
	r.GET("/join/:roomid", h.JoinRoomHandler)
}
