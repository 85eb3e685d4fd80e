package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/ijagberg/clichess/internal/chess"
	"github.com/ijagberg/clichess/internal/ws"
)

// GameConnections tracks the live websocket connections of one room.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one room: the rules engine plus seats, clocks, connections and the
// result hook. All rule questions are delegated to the engine; the room only
// adds turn order and transport.
type Game struct {
	ID string

	mu       sync.Mutex
	engine   *chess.Game
	toMove   chess.Color
	moves    []string
	lastMove *WireMove
	resolve  string
	players  struct {
		White ClientPlayer
		Black ClientPlayer
	}

	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
	onResolve   func(Result)
}

// NewGame opens a room at the starting position. onResolve, if non-nil, is
// called once when the game ends.
func NewGame(id string, onResolve func(Result)) *Game {
	return &Game{
		ID:          id,
		engine:      chess.NewGame(),
		toMove:      chess.White,
		connections: NewGameConnections(),
		whiteClock:  NewClock(10 * time.Minute),
		blackClock:  NewClock(10 * time.Minute),
		onResolve:   onResolve,
	}
}

func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: "white", TimeLeft: 6000}
		return PlayerColorWhite, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: "black", TimeLeft: 6000}
		return PlayerColorBlack, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotState()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.players.White.ID != "" && g.players.White.ID == playerID {
		return true
	}
	if g.players.Black.ID != "" && g.players.Black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// MakeMove resolves the wire move against the engine's legal set for the
// side to move, executes it, flips the turn and broadcasts the new state.
func (g *Game) MakeMove(playerID string, wire WireMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolve != "" {
		return errors.New("game is over")
	}
	if seat := g.seatOf(g.toMove); seat.ID != "" && seat.ID != playerID {
		return errors.New("not your turn")
	}

	move, err := g.resolveWireMove(wire)
	if err != nil {
		return err
	}

	g.moverClock().Stop()
	if err := g.engine.ExecuteMove(move); err != nil {
		g.moverClock().Start()
		return err
	}
	g.moves = append(g.moves, wireNotation(move))
	g.lastMove = &WireMove{From: move.From.String(), To: move.To.String(), Promotion: wire.Promotion}
	g.toMove = g.toMove.Opponent()
	g.moverClock().Start()

	g.players.White.TimeLeft = int(g.whiteClock.TimeLeft().Milliseconds() / 100)
	g.players.Black.TimeLeft = int(g.blackClock.TimeLeft().Milliseconds() / 100)

	if err := g.updateResolution(); err != nil {
		return err
	}

	go g.broadcastState()
	return nil
}

// resolveWireMove maps from/to coordinates onto a member of the legal set,
// so the client never has to spell out castles or en passant.
func (g *Game) resolveWireMove(wire WireMove) (chess.Move, error) {
	from, err := chess.ParseSquare(wire.From)
	if err != nil {
		return chess.Move{}, fmt.Errorf("from square: %w", err)
	}
	to, err := chess.ParseSquare(wire.To)
	if err != nil {
		return chess.Move{}, fmt.Errorf("to square: %w", err)
	}

	piece := g.engine.Board().PieceAt(from)
	if piece == nil {
		return chess.Move{}, fmt.Errorf("no piece at %s", from)
	}
	if piece.Color() != g.toMove {
		return chess.Move{}, errors.New("not your piece")
	}

	legal, err := g.engine.LegalMovesFrom(from)
	if err != nil {
		return chess.Move{}, err
	}
	var candidates []chess.Move
	for _, m := range legal {
		if m.To == to {
			candidates = append(candidates, m)
		}
	}
	switch len(candidates) {
	case 0:
		return chess.Move{}, fmt.Errorf("%s%s is not legal", from, to)
	case 1:
		return candidates[0], nil
	}
	// Several candidates share a destination only for promotions.
	kind, err := promotionKind(wire.Promotion)
	if err != nil {
		return chess.Move{}, err
	}
	for _, m := range candidates {
		if m.Promotion == kind {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("promotion to %s is not offered", kind)
}

// updateResolution ends the game when the side to move has no legal reply:
// checkmate when its king is checked, stalemate otherwise.
func (g *Game) updateResolution() error {
	moves, err := g.engine.LegalMoves(g.toMove)
	if err != nil {
		return err
	}
	if len(moves) > 0 {
		return nil
	}
	checked, err := g.engine.IsKingChecked(g.toMove)
	if err != nil {
		return err
	}
	if checked {
		g.resolve = "checkmate"
	} else {
		g.resolve = "stalemate"
	}
	g.moverClock().Stop()

	if g.onResolve != nil {
		g.onResolve(Result{
			GameID:   g.ID,
			Result:   g.resolve,
			FinalFEN: g.engine.FEN(g.toMove),
			Moves:    append([]string(nil), g.moves...),
			EndedAt:  time.Now(),
		})
	}
	return nil
}

func (g *Game) seatOf(color chess.Color) ClientPlayer {
	if color == chess.White {
		return g.players.White
	}
	return g.players.Black
}

func (g *Game) moverClock() *Clock {
	if g.toMove == chess.White {
		return g.whiteClock
	}
	return g.blackClock
}

// snapshotState builds the broadcast view. Callers hold g.mu.
func (g *Game) snapshotState() GameState {
	highlights := make(map[chess.Square]bool)
	if g.lastMove != nil {
		if sq, err := chess.ParseSquare(g.lastMove.From); err == nil {
			highlights[sq] = true
		}
		if sq, err := chess.ParseSquare(g.lastMove.To); err == nil {
			highlights[sq] = true
		}
	}

	checked, err := g.engine.IsKingChecked(g.toMove)
	if err != nil {
		log.Printf("game %s: check query: %v", g.ID, err)
	}

	state := GameState{
		FEN:      g.engine.FEN(g.toMove),
		Render:   chess.WhitesPerspective(g.engine.Board(), highlights),
		ToMove:   g.toMove.String(),
		Moves:    append([]string(nil), g.moves...),
		IsCheck:  checked,
		LastMove: g.lastMove,
		CapturedPieces: CapturedPieces{
			White: capturedKinds(g.engine.Captured(chess.White)),
			Black: capturedKinds(g.engine.Captured(chess.Black)),
		},
	}
	if g.resolve != "" {
		resolve := g.resolve
		state.Resolve = &resolve
	}
	state.Players.White = g.players.White
	state.Players.Black = g.players.Black
	return state
}

func capturedKinds(pieces []*chess.Piece) []string {
	kinds := make([]string, 0, len(pieces))
	for _, p := range pieces {
		kinds = append(kinds, p.Kind().String())
	}
	return kinds
}

func promotionKind(letter string) (chess.PieceKind, error) {
	switch letter {
	case "n":
		return chess.Knight, nil
	case "b":
		return chess.Bishop, nil
	case "r":
		return chess.Rook, nil
	case "q":
		return chess.Queen, nil
	case "":
		return 0, errors.New("promotion piece required")
	}
	return 0, fmt.Errorf("unknown promotion piece %q", letter)
}

func wireNotation(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.Kind == chess.MovePromotion {
		switch m.Promotion {
		case chess.Knight:
			s += "n"
		case chess.Bishop:
			s += "b"
		case chess.Rook:
			s += "r"
		case chess.Queen:
			s += "q"
		}
	}
	return s
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection, reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.snapshotState()
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
