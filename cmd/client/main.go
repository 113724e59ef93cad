package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"cinediscover/proj/internal/client"
	"cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/lib/logger"
)

const usage = `Usage: client [flags] <command>

Commands:
  health                      check the server
  list                        list the whole catalog
  search <query> [type]       search titles (type: movie|series|all)
  fav <movie-id>              toggle a favorite
  favs                        show server-confirmed favorites

Flags:
`

func main() {
	addr := flag.String("addr", "http://localhost:8000", "server base URL")
	storePath := flag.String("store", defaultStorePath(), "path to the local state file")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.SetupLogger(*debug)
	store, err := client.OpenStore(*storePath)
	if err != nil {
		fatal(err)
	}
	api := client.New(*addr)
	session, err := client.NewSession(log, api, store)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch cmd := flag.Arg(0); cmd {
	case "health":
		health, err := api.Healthcheck(ctx)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("status: %s (version %s, at %s)\n", health.Status, health.Version, health.Timestamp.Format(time.RFC3339))
	case "list":
		movies, err := api.GetMovies(ctx)
		if err != nil {
			fatal(err)
		}
		printMovies(movies, session)
	case "search":
		if flag.NArg() < 2 {
			fatal(fmt.Errorf("search requires a query"))
		}
		movieType := "all"
		if flag.NArg() > 2 {
			movieType = flag.Arg(2)
		}
		movies, err := api.SearchMovies(ctx, flag.Arg(1), movieType)
		if err != nil {
			fatal(err)
		}
		printMovies(movies, session)
	case "fav":
		if flag.NArg() < 2 {
			fatal(fmt.Errorf("fav requires a movie id"))
		}
		movieID, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			fatal(fmt.Errorf("invalid movie id %q", flag.Arg(1)))
		}
		favorited, err := session.ToggleFavorite(ctx, movieID)
		if err != nil {
			fatal(err)
		}
		if favorited {
			fmt.Printf("movie %d added to favorites\n", movieID)
		} else {
			fmt.Printf("movie %d removed from favorites\n", movieID)
		}
	case "favs":
		favorites, err := session.Refresh(ctx)
		if err != nil {
			fatal(err)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tTYPE\tRATING\tFAVORITED AT")
		for _, f := range favorites {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\n",
				f.Movie.ID, f.Movie.Title, f.Movie.Type, float64(f.Movie.Rating), f.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	default:
		fatal(fmt.Errorf("unknown command %q", cmd))
	}
}

func printMovies(movies []models.Movie, session *client.Session) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tYEAR\tGENRE\tRATING\tFAV")
	for _, m := range movies {
		fav := ""
		if session.IsFavorite(m.ID) {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%.1f\t%s\n",
			m.ID, m.Title, m.Type, m.ReleaseYear, m.Genre, float64(m.Rating), fav)
	}
	w.Flush()
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cinediscover.json"
	}
	return filepath.Join(home, ".cinediscover.json")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
