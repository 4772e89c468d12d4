package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"tractor/internal/bot"
	"tractor/internal/config"
	"tractor/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	PhaseLobby   = "lobby"
	PhasePlaying = "playing"
	PhaseDone    = "done"

	botUserPrefix = "bot:"
)

// MatchLabel is the queryable label advertised to the matchmaker.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [4]string                   `json:"seats"`      // Array of user IDs, empty string means seat is empty
	OwnerSeat int                         `json:"owner_seat"` // Seat index of the match owner
	Tick      int64                       `json:"tick"`
	Phase     string                      `json:"phase"`
	Presences map[string]runtime.Presence `json:"-"`
	Agents    map[int]*bot.Agent          `json:"-"` // Per-seat engines: bots play with them, stalled humans borrow them
	Game      *domain.Game                `json:"-"` // Current round snapshot (nil in lobby)

	TurnSeat     int   `json:"turn_seat"`
	LeaderSeat   int   `json:"leader_seat"`
	TurnDeadline int64 `json:"turn_deadline"` // Tick when the current turn times out

	// Levels are the two teams' trump ranks, indexed by seat parity, carried
	// across rounds of the same lobby. DealerSeat decides whose level the
	// next round is played at.
	Levels     [2]domain.Rank `json:"levels"`
	DealerSeat int            `json:"dealer_seat"`

	BotsEnabled          bool  `json:"bots_enabled"`
	BotMinDelay          int   `json:"bot_min_delay"`
	BotMaxDelay          int   `json:"bot_max_delay"`
	BotAutoFillDelay     int   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64 `json:"bot_wait_until"`
	LastSinglePlayerTick int64 `json:"last_single_player_tick"`

	rng *rand.Rand
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

func isBotUserId(userId string) bool {
	return strings.HasPrefix(userId, botUserPrefix)
}

func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func seatOf(seats [4]string, userId string) int {
	for i, s := range seats {
		if s == userId {
			return i
		}
	}
	return -1
}

// Wire payloads.

type PlayCardsMsg struct {
	Cards []WireCard `json:"cards"`
}

type GameStartedMsg struct {
	DeclarerSeat int `json:"declarer_seat"`
	TrumpSuit    int `json:"trump_suit"`
	TrumpRank    int `json:"trump_rank"`
	TurnSeat     int `json:"turn_seat"`
}

type HandDealtMsg struct {
	Seat  int        `json:"seat"`
	Cards []WireCard `json:"cards"`
}

type CardPlayedMsg struct {
	Seat     int        `json:"seat"`
	Cards    []WireCard `json:"cards"`
	NextSeat int        `json:"next_seat"`
}

type TrickEndedMsg struct {
	WinnerSeat     int `json:"winner_seat"`
	Points         int `json:"points"`
	AttackerPoints int `json:"attacker_points"`
}

type GameEndedMsg struct {
	AttackerPoints int  `json:"attacker_points"`
	AttackersWon   bool `json:"attackers_won"`
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:      time.Now().Unix(),
		Phase:     PhaseLobby,
		Presences: make(map[string]runtime.Presence),
		Agents:    make(map[int]*bot.Agent),
		OwnerSeat: -1,
		TurnSeat:  -1,
		Levels:    [2]domain.Rank{domain.RankTwo, domain.RankTwo},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for seat := 0; seat < 4; seat++ {
		state.Agents[seat] = bot.NewAgent(seat)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	state.BotsEnabled = true
	if val, ok := env["tractor_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["tractor_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["tractor_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["tractor_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	if state.BotMinDelay == 0 || state.BotMaxDelay == 0 {
		state.BotMinDelay, state.BotMaxDelay = config.GetBotDelayRange()
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	tickRate := 1
	return state, tickRate, mh.label(state)
}

func (mh *matchHandler) label(state *MatchState) string {
	b, _ := json.Marshal(MatchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  "tractor",
		Phase: state.Phase,
	})
	return string(b)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(mh.label(state)); err != nil {
		logger.Error("Failed to update match label: %v", err)
	}
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace while in lobby.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Phase == PhaseLobby {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign seat: empty seats first, then bot seats while still in lobby.
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Phase == PhaseLobby {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}
		mh.broadcast(dispatcher, logger, OpPlayerJoined, map[string]interface{}{"user_id": p.GetUserId()})
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				if matchState.Phase == PhasePlaying {
					// Mid-round the seat stays alive as a bot so the round can finish.
					matchState.Seats[i] = botUserPrefix + strconv.Itoa(i)
				} else {
					matchState.Seats[i] = ""
				}
				break
			}
		}
		mh.broadcast(dispatcher, logger, OpPlayerLeft, map[string]interface{}{"user_id": p.GetUserId()})
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}
	if matchState.Phase == PhasePlaying {
		mh.enforceTurnTimeout(matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

// handleStartGame deals a round. Only the owner seat may start, and only
// from a full lobby.
func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Phase != PhaseLobby {
		logger.Warn("handleStartGame: Game already in progress.")
		return
	}
	senderSeat := seatOf(state.Seats, msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		logger.Warn("handleStartGame: Non-owner seat %d tried to start.", senderSeat)
		return
	}
	if state.GetOpenSeatsCount() > 0 {
		logger.Warn("handleStartGame: Lobby is not full.")
		return
	}
	mh.startRound(state, dispatcher, logger)
}

func (mh *matchHandler) startRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for _, a := range state.Agents {
		a.Reset()
	}
	deckConfig := domain.DefaultDeckConfig()
	hands, kitty := domain.Deal(domain.ShuffleDeck(domain.NewDeck(deckConfig), state.rng), deckConfig)

	// One declaration pass from the dealer. The engine bids for every seat;
	// the strongest standing bid fixes trump. The round plays at the dealing
	// team's level.
	trumpRank := state.Levels[state.DealerSeat%2]
	var declaration *bot.Declaration
	for i := 0; i < 4; i++ {
		seat := (state.DealerSeat + i) % 4
		if d := state.Agents[seat].Declare(hands[seat], trumpRank, declaration); d != nil {
			declaration = d
		}
	}
	trump := domain.TrumpInfo{TrumpRank: trumpRank, TrumpSuit: domain.SuitNone}
	declarer := state.DealerSeat
	if declaration != nil {
		trump.TrumpSuit = declaration.Suit
		trump.Declared = true
		declarer = declaration.Seat
	}

	full := append(append([]domain.Card{}, hands[declarer]...), kitty...)
	buried := state.Agents[declarer].Bury(full, trump, deckConfig.KittySize)
	hands[declarer] = domain.RemoveCards(full, buried)

	g := &domain.Game{
		Config:       deckConfig,
		Trump:        trump,
		DeclarerSeat: declarer,
		Kitty:        buried,
	}
	for seat := 0; seat < 4; seat++ {
		domain.SortHand(hands[seat], trump)
		g.Players = append(g.Players, &domain.Player{Seat: seat, UserID: state.Seats[seat], Hand: hands[seat]})
	}

	state.Game = g
	state.Phase = PhasePlaying
	state.LeaderSeat = declarer
	state.TurnSeat = declarer
	state.TurnDeadline = state.Tick + int64(config.GetTurnDuration())
	state.BotWaitUntil = 0

	mh.broadcast(dispatcher, logger, OpTrumpDeclared, map[string]interface{}{
		"declarer_seat": declarer,
		"trump_suit":    int(trump.TrumpSuit),
		"trump_rank":    int(trump.TrumpRank),
	})
	for seat := 0; seat < 4; seat++ {
		mh.sendToSeat(state, dispatcher, logger, seat, OpHandDealt, HandDealtMsg{
			Seat:  seat,
			Cards: cardsToWire(hands[seat]),
		})
	}
	mh.broadcast(dispatcher, logger, OpGameStarted, GameStartedMsg{
		DeclarerSeat: declarer,
		TrumpSuit:    int(trump.TrumpSuit),
		TrumpRank:    int(trump.TrumpRank),
		TurnSeat:     declarer,
	})
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Phase != PhasePlaying || state.Game == nil {
		return
	}
	senderSeat := seatOf(state.Seats, msg.GetUserId())
	if senderSeat != state.TurnSeat {
		logger.Warn("handlePlayCards: Seat %d played out of turn.", senderSeat)
		return
	}

	var payload PlayCardsMsg
	if err := json.Unmarshal(msg.GetData(), &payload); err != nil {
		logger.Warn("handlePlayCards: Malformed payload from seat %d: %v", senderSeat, err)
		return
	}
	cards := cardsFromWire(payload.Cards)
	if !mh.isLegalPlay(state, senderSeat, cards) {
		logger.Warn("handlePlayCards: Illegal play from seat %d.", senderSeat)
		return
	}
	mh.advancePlay(state, dispatcher, logger, senderSeat, cards)
}

// isLegalPlay validates a play against hand contents and follow rules.
func (mh *matchHandler) isLegalPlay(state *MatchState, seat int, cards []domain.Card) bool {
	if len(cards) == 0 {
		return false
	}
	player, err := state.Game.PlayerAt(seat)
	if err != nil || !domain.ContainsAll(player.Hand, cards) {
		return false
	}
	trick := state.Game.CurrentTrick
	if trick == nil || len(trick.Plays) == 0 {
		return domain.IdentifyCombo(cards, state.Game.Trump).Type != domain.ComboInvalid
	}
	lead, err := trick.LeadingPlay()
	if err != nil {
		return false
	}
	leadCombo := domain.IdentifyCombo(lead.Cards, state.Game.Trump)
	return domain.IsLegalFollow(cards, leadCombo, player.Hand, state.Game.Trump)
}

func (mh *matchHandler) advancePlay(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int, cards []domain.Card) {
	g := state.Game
	if g.CurrentTrick == nil {
		g.CurrentTrick = domain.NewTrick()
	}
	if err := g.CurrentTrick.AddPlay(seat, cards, g.Trump); err != nil {
		logger.Error("advancePlay: %v", err)
		return
	}
	player, _ := g.PlayerAt(seat)
	player.Hand = domain.RemoveCards(player.Hand, cards)

	state.BotWaitUntil = 0
	next := (seat + 1) % 4
	mh.broadcast(dispatcher, logger, OpCardPlayed, CardPlayedMsg{
		Seat:     seat,
		Cards:    cardsToWire(cards),
		NextSeat: next,
	})

	if !g.CurrentTrick.Complete() {
		state.TurnSeat = next
		state.TurnDeadline = state.Tick + int64(config.GetTurnDuration())
		return
	}

	winner, err := g.CurrentTrick.Winner(g.Trump)
	if err != nil {
		logger.Error("advancePlay: %v", err)
		return
	}
	points := g.CurrentTrick.PointValue
	if !g.IsDefender(winner) {
		g.AttackerPoints += points
	}
	g.CompletedTricks = append(g.CompletedTricks, *g.CurrentTrick)
	g.CurrentTrick = nil

	mh.broadcast(dispatcher, logger, OpTrickEnded, TrickEndedMsg{
		WinnerSeat:     winner,
		Points:         points,
		AttackerPoints: g.AttackerPoints,
	})

	leaderHand, _ := g.PlayerAt(winner)
	if len(leaderHand.Hand) == 0 {
		mh.endRound(state, dispatcher, logger, winner)
		return
	}
	state.LeaderSeat = winner
	state.TurnSeat = winner
	state.TurnDeadline = state.Tick + int64(config.GetTurnDuration())
}

func (mh *matchHandler) endRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, lastWinner int) {
	g := state.Game
	if !g.IsDefender(lastWinner) {
		// Attackers taking the last trick double the buried kitty points.
		g.AttackerPoints += 2 * domain.TotalPoints(g.Kitty)
	}
	attackersWon := g.AttackerPoints >= g.PointTarget()

	// The winning team advances its level and the deal moves with the result,
	// so the next round of this lobby plays at the new rank.
	delta := domain.RankDelta(g.AttackerPoints, g.PointTarget())
	attackTeam := (g.DeclarerSeat + 1) % 2
	defendTeam := g.DeclarerSeat % 2
	if attackersWon {
		state.Levels[attackTeam] = domain.AdvanceRank(state.Levels[attackTeam], delta)
		state.DealerSeat = (g.DeclarerSeat + 1) % 4
	} else {
		state.Levels[defendTeam] = domain.AdvanceRank(state.Levels[defendTeam], delta)
		state.DealerSeat = domain.TeammateOf(g.DeclarerSeat)
	}

	mh.broadcast(dispatcher, logger, OpGameEnded, GameEndedMsg{
		AttackerPoints: g.AttackerPoints,
		AttackersWon:   attackersWon,
	})

	state.Game = nil
	state.Phase = PhaseLobby
	state.TurnSeat = -1
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill lobby with bots when a single human has been waiting.
	if state.Phase == PhaseLobby {
		if state.GetHumanPlayerCount() == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat == "" {
						state.Seats[i] = botUserPrefix + strconv.Itoa(i)
						logger.Info("processBots: Added bot to seat %d", i)
						added = true
					}
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// 2. Bot turns in-game, after a humanizing delay.
	if state.Phase != PhasePlaying || state.Game == nil {
		return
	}
	if !isBotUserId(state.Seats[state.TurnSeat]) {
		return
	}
	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += state.rng.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0
	mh.playEngineMove(state, dispatcher, logger, state.TurnSeat)
}

// enforceTurnTimeout plays the engine's choice for a human seat that has run
// out its turn clock, keeping the table moving.
func (mh *matchHandler) enforceTurnTimeout(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.TurnSeat < 0 || isBotUserId(state.Seats[state.TurnSeat]) {
		return
	}
	if state.Tick < state.TurnDeadline {
		return
	}
	logger.Info("enforceTurnTimeout: Seat %d stalled, playing for them.", state.TurnSeat)
	mh.playEngineMove(state, dispatcher, logger, state.TurnSeat)
}

func (mh *matchHandler) playEngineMove(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int) {
	d, err := state.Agents[seat].Play(state.Game)
	if err != nil {
		logger.Error("playEngineMove: Seat %d failed to decide: %v", seat, err)
		return
	}
	mh.advancePlay(state, dispatcher, logger, seat, d.Cards)
}

func (mh *matchHandler) broadcast(dispatcher runtime.MatchDispatcher, logger runtime.Logger, op int64, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		logger.Error("broadcast: marshal failed: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(op, b, nil, nil, true); err != nil {
		logger.Error("broadcast: %v", err)
	}
}

// sendToSeat delivers a private message, skipping bot seats.
func (mh *matchHandler) sendToSeat(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int, op int64, payload interface{}) {
	userId := state.Seats[seat]
	p, ok := state.Presences[userId]
	if !ok {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		logger.Error("sendToSeat: marshal failed: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(op, b, []runtime.Presence{p}, nil, true); err != nil {
		logger.Error("sendToSeat: %v", err)
	}
}
