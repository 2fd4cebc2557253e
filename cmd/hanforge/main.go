// Command hanforge builds the fused Chinese character dataset from the
// Unihan archive, CC-CEDICT, the CHISE IDS corpus, and the optional
// SUBTLEX-CH frequency tables.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/mattn/go-sqlite3"

	"github.com/linqiu/hanforge/pkg/cedict"
	"github.com/linqiu/hanforge/pkg/config"
	"github.com/linqiu/hanforge/pkg/fuse"
	"github.com/linqiu/hanforge/pkg/ids"
	"github.com/linqiu/hanforge/pkg/kangxi"
	"github.com/linqiu/hanforge/pkg/store"
	"github.com/linqiu/hanforge/pkg/subtlex"
	"github.com/linqiu/hanforge/pkg/unihan"
)

var (
	cfgPath string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hanforge",
	Short: "Fuse Chinese character reference sources into one dataset",
	Long: `hanforge merges the Unihan database, CC-CEDICT, the CHISE IDS
decomposition corpus, and the SUBTLEX-CH frequency tables into a single
cross-referenced JSON dataset of radicals, characters, and words.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = newLogger(level)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline and write the JSON dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context())
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download missing downloadable sources (CC-CEDICT)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd.Context())
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a built JSON dataset into a SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default hanforge.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(buildCmd, fetchCmd, loadCmd)
}

func newLogger(level string) (*zap.Logger, error) {
	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lv)
	return zcfg.Build()
}

// runBuild executes the extractors in order and fuses their outputs. The
// job is strictly linear: each source is opened, read to completion, and
// released before the next one.
func runBuild(ctx context.Context) error {
	archive, err := unihan.OpenArchive(cfg.Sources.Unihan)
	if err != nil {
		return err
	}

	readings, err := archive.Readings()
	if err != nil {
		return err
	}
	logger.Info("parsed readings", zap.Int("characters", len(readings)))

	radicalStroke, err := archive.RadicalStrokes()
	if err != nil {
		return err
	}
	logger.Info("parsed radical/stroke data", zap.Int("characters", len(radicalStroke)))

	grades, err := archive.GradeLevels()
	if err != nil {
		return err
	}
	logger.Info("parsed grade levels", zap.Int("characters", len(grades)))

	variants, err := archive.VariantLinks()
	if err != nil {
		return err
	}
	logger.Info("parsed variants",
		zap.Int("simplifiedToTraditional", len(variants.SimpToTrad)),
		zap.Int("traditionalToSimplified", len(variants.TradToSimp)))

	dict, err := cedict.Load(cfg.Sources.CEDICT)
	if err != nil {
		return err
	}
	logger.Info("parsed dictionary",
		zap.Int("words", len(dict.Words)),
		zap.Int("indexedCharacters", len(dict.ByChar)))

	decomps, err := ids.ParseDir(cfg.Sources.IDSDir)
	if err != nil {
		return err
	}
	logger.Info("parsed decompositions", zap.Int("characters", len(decomps)))

	wordRanks, err := loadRanks(cfg.Sources.WordFreq, subtlex.LoadWordRanks, "word")
	if err != nil {
		return err
	}
	charRanks, err := loadRanks(cfg.Sources.CharFreq, subtlex.LoadCharRanks, "character")
	if err != nil {
		return err
	}

	engine := fuse.NewEngine(kangxi.Table(), logger)
	ds := engine.Build(fuse.Inputs{
		Readings:      readings,
		RadicalStroke: radicalStroke,
		GradeLevels:   grades,
		Variants:      variants,
		Dict:          dict,
		Decomps:       decomps,
		WordRanks:     wordRanks,
		CharRanks:     charRanks,
	})

	if err := ds.WriteJSON(cfg.Output.JSON); err != nil {
		return err
	}
	logger.Info("dataset written", zap.String("path", cfg.Output.JSON))
	return nil
}

// loadRanks wraps the optional frequency extractors: a missing table logs
// and degrades to an empty mapping instead of failing the run.
func loadRanks(path string, load func(string) (map[string]int, error), kind string) (map[string]int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("frequency table missing, skipping",
			zap.String("kind", kind), zap.String("path", path))
		return map[string]int{}, nil
	}
	ranks, err := load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed frequency table",
		zap.String("kind", kind), zap.Int("entries", len(ranks)))
	return ranks, nil
}

func runFetch(ctx context.Context) error {
	if err := cedict.EnsureDictionary(ctx, cfg.Sources.CEDICT); err != nil {
		return fmt.Errorf("ensure cedict: %w", err)
	}
	logger.Info("dictionary present", zap.String("path", cfg.Sources.CEDICT))
	return nil
}

func runLoad() error {
	ds, err := fuse.ReadJSON(cfg.Output.JSON)
	if err != nil {
		return err
	}

	conn, err := sql.Open("sqlite3", cfg.Output.DB)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.Output.DB, err)
	}
	defer conn.Close()

	if err := store.Init(conn); err != nil {
		return err
	}
	if err := store.Load(conn, ds); err != nil {
		return err
	}
	logger.Info("dataset loaded",
		zap.String("db", cfg.Output.DB),
		zap.Int("characters", len(ds.Characters)),
		zap.Int("words", len(ds.Words)))
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
