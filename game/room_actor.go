package game

import (
	"log/slog"
	"time"
)

func NewRoom(name string, host Player, config RoomConfig, supplier QuestionSupplier) *room {
	r := &room{
		name:        name,
		hostId:      host.Id(),
		status:      STATUS_WAITING,
		config:      config,
		seats:       make([]*playerSeat, 0, config.MaxPlayers),
		supplier:    supplier,
		inbox:       make(chan ClientPacketEnvelope, 1024),
		joinReqs:    make(chan RoomJoinRequest, 8),
		removeMe:    make(chan Player, 64),
		ticks:       make(chan time.Time, 24),
		pingPlayers: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	r.seat(host, true)
	return r
}

// seat appends a player to the roster with a fresh battle state.
func (r *room) seat(p Player, isHost bool) *playerSeat {
	s := &playerSeat{
		state: PlayerState{
			Id:       p.Id(),
			AvatarId: p.AvatarId(),
			Username: p.Username(),
			Health:   MAX_HEALTH,
			IsHost:   isHost,
		},
		conn:      p,
		joinOrder: r.nextJoin,
	}
	r.nextJoin++
	r.seats = append(r.seats, s)
	p.SetRoom(r)
	return s
}

// GameLoop is the single writer for all room state. Every mutation, player
// or timer originated, goes through this select.
func (r *room) GameLoop() {
	defer r.releasePlayers()

	// The host only learns the room id once the lobby has assigned it.
	if host := r.seatById(r.hostId); host != nil {
		host.conn.Send(MakePacketRoomState(r.snapshot()).Marshal())
	}

	for {
		select {
		case e := <-r.inbox:
			r.handleEnvelope(e)
		case jreq := <-r.joinReqs:
			r.handleJoinRequest(jreq)
		case p := <-r.removeMe:
			r.handleRemovePlayer(p)
		case now, ok := <-r.ticks:
			if !ok {
				return
			}
			r.handleTick(now)
		case _, ok := <-r.pingPlayers:
			if !ok {
				return
			}
			for _, s := range r.seats {
				s.conn.Ping()
			}
		case <-r.done:
			return
		}
	}
}

func (r *room) releasePlayers() {
	for _, s := range r.seats {
		s.conn.CancelAndRelease()
	}
	r.seats = nil
}

func (r *room) seatOf(p Player) *playerSeat {
	for _, s := range r.seats {
		if s.conn == p {
			return s
		}
	}
	return nil
}

func (r *room) seatById(id string) *playerSeat {
	for _, s := range r.seats {
		if s.state.Id == id {
			return s
		}
	}
	return nil
}

func (r *room) snapshot() RoomSnapshot {
	players := make([]PlayerState, 0, len(r.seats))
	for _, s := range r.seats {
		players = append(players, s.state)
	}
	return RoomSnapshot{
		Id:      r.id,
		Name:    r.name,
		HostId:  r.hostId,
		Players: players,
		Config:  r.config,
		Status:  r.status,
	}
}

func (r *room) broadcast(packet *ServerPacket) {
	data := packet.Marshal()
	for _, s := range r.seats {
		s.conn.Send(data)
	}
}

func (r *room) sendError(s *playerSeat, err error) {
	s.conn.Send(MakePacketError(err).Marshal())
}

func (r *room) updateDescription() {
	if r.parentLobby != nil {
		r.parentLobby.RequestUpdateDescription(r.Description())
	}
}

func (r *room) handleEnvelope(e ClientPacketEnvelope) {
	s := r.seatOf(e.from)
	if s == nil {
		// Packet from a connection already removed from the roster.
		return
	}

	switch e.clientPacket.Type {
	case PACKET_LEAVE:
		r.handleRemovePlayer(e.from)
	case PACKET_START:
		r.handleStart(s)
	case PACKET_SUBMIT_ANSWER:
		r.handleSubmitAnswer(s, e.clientPacket.Answer)
	case PACKET_SUBMIT_ACTION:
		r.handleSubmitAction(s, e.clientPacket.Action)
	}
}

func (r *room) handleJoinRequest(jreq RoomJoinRequest) {
	if r.status != STATUS_WAITING {
		jreq.errChan <- ErrIllegalStateTransition
		return
	}
	if len(r.seats) >= r.config.MaxPlayers {
		jreq.errChan <- ErrRoomFull
		return
	}
	for _, s := range r.seats {
		if s.state.Username == jreq.player.Username() {
			jreq.errChan <- ErrDuplicateUsername
			return
		}
	}

	s := r.seat(jreq.player, false)
	jreq.errChan <- nil

	joined := MakePacketPlayerJoined(s.state).Marshal()
	for _, other := range r.seats {
		if other != s {
			other.conn.Send(joined)
		}
	}
	s.conn.Send(MakePacketRoomState(r.snapshot()).Marshal())
	r.updateDescription()

	slog.Info("player joined room", "room_id", r.id, "player_id", s.state.Id, "username", s.state.Username)
}

func (r *room) handleStart(s *playerSeat) {
	if r.status != STATUS_WAITING {
		r.sendError(s, ErrIllegalStateTransition)
		return
	}
	if s.state.Id != r.hostId {
		r.sendError(s, ErrNotHost)
		return
	}
	if len(r.seats) < 2 {
		r.sendError(s, ErrInsufficientPlayers)
		return
	}

	for _, seat := range r.seats {
		question, err := r.supplier.Next(r.config.Difficulty)
		if err != nil {
			r.finishWithSystemError(err)
			return
		}
		seat.question = question
	}

	r.status = STATUS_IN_PROGRESS
	r.deadline = time.Now().Add(time.Duration(r.config.TimeLimit) * time.Second)

	r.broadcast(MakePacketRoomState(r.snapshot()))
	for _, seat := range r.seats {
		seat.conn.Send(MakePacketQuestionIssued(seat.state.Id, seat.question.View()).Marshal())
	}
	r.updateDescription()

	slog.Info("match started", "room_id", r.id, "players", len(r.seats), "time_limit", r.config.TimeLimit)
}

func (r *room) handleSubmitAnswer(s *playerSeat, answer *PlayerAnswer) {
	if answer == nil {
		return
	}
	if r.status != STATUS_IN_PROGRESS || s.state.Eliminated {
		r.sendError(s, ErrIllegalStateTransition)
		return
	}

	correct, err := EvaluateAnswer(s.question, *answer)
	if err != nil {
		r.sendError(s, err)
		return
	}

	if correct {
		s.state.CurrentQuestionIndex++
		s.state.Score += SCORE_PER_CORRECT

		question, err := r.supplier.Next(r.config.Difficulty)
		if err != nil {
			r.finishWithSystemError(err)
			return
		}
		s.question = question
		s.conn.Send(MakePacketQuestionIssued(s.state.Id, question.View()).Marshal())

		r.broadcast(MakePacketAnswerResult(s.state.Id, true, s.state.Health))
		r.broadcast(MakePacketLeaderboard(BuildLeaderboard(r.seats)))
	} else {
		// Wrong answers cost health, not score. The same question stays
		// active so the player can retry it.
		s.state.Health = clampHealth(s.state.Health - r.config.WrongAnswerPenalty)
		if s.state.Health == 0 {
			r.eliminate(s)
		}
		r.broadcast(MakePacketAnswerResult(s.state.Id, false, s.state.Health))
	}

	r.winCheck()
}

func (r *room) handleSubmitAction(s *playerSeat, action *PlayerAction) {
	if action == nil {
		return
	}
	if r.status != STATUS_IN_PROGRESS || s.state.Eliminated {
		r.sendError(s, ErrIllegalStateTransition)
		return
	}

	target := r.seatById(action.TargetPlayerId)
	if target == nil || target.state.Eliminated {
		r.sendError(s, ErrInvalidTarget)
		return
	}

	var magnitude int
	switch action.Type {
	case ACTION_ATTACK:
		if target == s {
			r.sendError(s, ErrInvalidTarget)
			return
		}
		magnitude = r.config.AttackDamage
	case ACTION_HEAL:
		if target != s && !r.config.AllowAllyHeal {
			r.sendError(s, ErrInvalidTarget)
			return
		}
		magnitude = r.config.HealAmount
	default:
		r.sendError(s, ErrInvalidTarget)
		return
	}

	delta := ResolveAction(target.state.Health, action.Type, magnitude)
	target.state.Health = delta.newHealth
	if delta.eliminated {
		r.eliminate(target)
	}

	applied := PlayerAction{
		Timestamp:      time.Now().UnixMilli(),
		Type:           action.Type,
		SourcePlayerId: s.state.Id,
		TargetPlayerId: target.state.Id,
		Value:          magnitude,
	}
	r.broadcast(MakePacketActionApplied(applied, delta.newHealth))

	r.winCheck()
}

func (r *room) handleRemovePlayer(p Player) {
	idx := -1
	for i, s := range r.seats {
		if s.conn == p {
			idx = i
			break
		}
	}
	if idx == -1 {
		p.CancelAndRelease()
		return
	}

	removed := r.seats[idx]
	r.seats = append(r.seats[:idx], r.seats[idx+1:]...)
	p.CancelAndRelease()

	slog.Info("player left room", "room_id", r.id, "player_id", removed.state.Id)

	if len(r.seats) == 0 {
		if r.parentLobby != nil {
			r.parentLobby.RemoveRoom(r.id)
		}
		return
	}

	r.broadcast(MakePacketPlayerLeft(removed.state.Id))

	if removed.state.Id == r.hostId {
		r.reassignHost()
	}

	if r.status == STATUS_IN_PROGRESS && len(r.seats) < 2 {
		// No viable match remains.
		r.finish()
	}

	r.updateDescription()
	r.winCheck()
}

// reassignHost promotes the earliest-joined non-eliminated player, falling
// back to the earliest-joined one when nobody is left standing.
func (r *room) reassignHost() {
	var next *playerSeat
	for _, s := range r.seats {
		if s.state.Eliminated {
			continue
		}
		if next == nil || s.joinOrder < next.joinOrder {
			next = s
		}
	}
	if next == nil {
		for _, s := range r.seats {
			if next == nil || s.joinOrder < next.joinOrder {
				next = s
			}
		}
	}
	if next == nil {
		return
	}

	r.hostId = next.state.Id
	for _, s := range r.seats {
		s.state.IsHost = s == next
	}
	r.broadcast(MakePacketRoomState(r.snapshot()))
}

func (r *room) eliminate(s *playerSeat) {
	s.state.Eliminated = true
	slog.Info("player eliminated", "room_id", r.id, "player_id", s.state.Id)
	if s.state.Id == r.hostId {
		r.reassignHost()
	}
}

func (r *room) handleTick(now time.Time) {
	if r.status != STATUS_IN_PROGRESS {
		return
	}
	if now.After(r.deadline) {
		slog.Info("time limit reached", "room_id", r.id)
		r.finish()
	}
}

func (r *room) winCheck() {
	if r.status != STATUS_IN_PROGRESS {
		return
	}
	alive := 0
	for _, s := range r.seats {
		if !s.state.Eliminated {
			alive++
		}
	}
	if alive <= 1 {
		r.finish()
	}
}

// finish is the only transition into FINISHED. It is terminal: the room
// stays readable until the last player disconnects.
func (r *room) finish() {
	if r.status == STATUS_FINISHED {
		return
	}
	r.status = STATUS_FINISHED
	r.broadcast(MakePacketRoomFinished(BuildLeaderboard(r.seats)))
	r.updateDescription()
	slog.Info("match finished", "room_id", r.id)
}

// finishWithSystemError ends the match rather than leaving it wedged when
// the question supplier gives up.
func (r *room) finishWithSystemError(err error) {
	slog.Error("question supplier failed, finishing room", "room_id", r.id, "error", err)
	r.finish()
}
