package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ijagberg/clichess/internal/chess"
	"github.com/ijagberg/clichess/internal/player"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "local":
		localCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: clichess local [-white human|greedy] [-black human|greedy] [-fen position]")
}

func localCmd(args []string) {
	fs := flag.NewFlagSet("local", flag.ExitOnError)
	whiteKind := fs.String("white", "human", "white player: human or greedy")
	blackKind := fs.String("black", "greedy", "black player: human or greedy")
	fen := fs.String("fen", "", "starting position (defaults to the standard setup)")
	fs.Parse(args)

	white, err := newPlayer(*whiteKind)
	if err != nil {
		log.Fatal(err)
	}
	black, err := newPlayer(*blackKind)
	if err != nil {
		log.Fatal(err)
	}

	game := chess.NewGame()
	toMove := chess.White
	if *fen != "" {
		game, toMove, err = chess.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("parse fen: %v", err)
		}
	}

	players := map[chess.Color]player.Player{
		chess.White: white,
		chess.Black: black,
	}

	for {
		fmt.Print(chess.Perspective(game.Board(), toMove, nil))

		move, err := players[toMove].ProposeMove(game, toMove)
		if errors.Is(err, player.ErrNoLegalMoves) {
			announceEnd(game, toMove)
			return
		}
		if err != nil {
			log.Fatalf("%s to move: %v", toMove, err)
		}

		if err := game.ExecuteMove(move); err != nil {
			log.Fatalf("execute %s: %v", move, err)
		}
		fmt.Printf("%s plays %s\n\n", toMove, move)
		toMove = toMove.Opponent()
	}
}

func newPlayer(kind string) (player.Player, error) {
	switch kind {
	case "human":
		return player.NewHuman(os.Stdin, os.Stdout), nil
	case "greedy":
		return player.NewGreedy(), nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}

func announceEnd(game *chess.Game, toMove chess.Color) {
	checked, err := game.IsKingChecked(toMove)
	if err != nil {
		log.Fatalf("check query: %v", err)
	}
	if checked {
		fmt.Printf("checkmate, %s wins\n", toMove.Opponent())
	} else {
		fmt.Println("stalemate")
	}
}
