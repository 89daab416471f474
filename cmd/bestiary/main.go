package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bestiary/internal/config"
	"bestiary/internal/creature"
	"bestiary/internal/util"
)

func main() {
	pflag.String("assets", "", "data asset dir (empty = embedded asset)")
	pflag.Bool("validate", false, "validate the data asset and exit")
	pflag.Int("species", -1, "species id to report")
	pflag.String("name", "", "species display name to report (instead of id)")
	pflag.Int("n", 0, "attack-variant draws for the distribution report")
	pflag.Int64("seed", 12345, "seed")
	pflag.String("out", "", "write the JSON report to a file instead of stdout")
	pflag.String("log-level", "info", "log level")
	pflag.Parse()

	viper.SetDefault("workers", 8)
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}
	viper.SetConfigName("bestiary")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
	}

	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	store, careers, err := load(viper.GetString("assets"))
	if err != nil {
		log.Error().Err(err).Msg("data asset is defective")
		os.Exit(1)
	}
	if viper.GetBool("validate") {
		log.Info().Int("species", store.Len()).Msg("data asset is valid")
		return
	}

	id := viper.GetInt("species")
	if name := viper.GetString("name"); name != "" {
		p, err := store.GetByName(name)
		if err != nil {
			log.Error().Err(err).Msg("lookup failed")
			os.Exit(1)
		}
		id = p.ID
	}
	if id < 0 {
		pflag.Usage()
		os.Exit(2)
	}

	report, err := buildReport(store, careers, id, viper.GetInt("n"), viper.GetInt64("seed"), viper.GetInt("workers"))
	if err != nil {
		log.Error().Err(err).Int("species", id).Msg("report failed")
		os.Exit(1)
	}

	b, _ := json.MarshalIndent(report, "", "  ")
	if out := viper.GetString("out"); out != "" {
		if err := os.WriteFile(out, b, 0644); err != nil {
			log.Error().Err(err).Msg("write report")
			os.Exit(1)
		}
		log.Info().Str("out", out).Msg("report written")
		return
	}
	fmt.Println(string(b))
}

func load(dir string) (*creature.Store, *creature.Careers, error) {
	if dir == "" {
		store, err := creature.DefaultStore()
		if err != nil {
			return nil, nil, err
		}
		careers, err := creature.DefaultCareers()
		if err != nil {
			return nil, nil, err
		}
		return store, careers, nil
	}
	sc, cc, err := config.LoadAll(dir)
	if err != nil {
		return nil, nil, err
	}
	store, err := creature.NewStore(sc)
	if err != nil {
		return nil, nil, err
	}
	careers, err := creature.NewCareers(cc)
	if err != nil {
		return nil, nil, err
	}
	return store, careers, nil
}

type speciesReport struct {
	ID         int                     `json:"id"`
	Name       string                  `json:"name"`
	Level      int                     `json:"level"`
	Health     [2]int                  `json:"health"`
	Damage     [2]int                  `json:"damage"`
	Resistance map[string]float64      `json:"resistance"`
	Career     creature.ClassOverride  `json:"career"`
	Variants   map[string]variantShare `json:"variants,omitempty"`
}

type variantShare struct {
	Declared int     `json:"declared_pct"`
	Observed float64 `json:"observed_ratio"`
}

func buildReport(store *creature.Store, careers *creature.Careers, id, draws int, seed int64, workers int) (*speciesReport, error) {
	p, err := store.Get(id)
	if err != nil {
		return nil, err
	}

	rep := &speciesReport{
		ID:         p.ID,
		Name:       p.Name,
		Level:      p.Level,
		Health:     [2]int{p.MinHealth, p.MaxHealth},
		Damage:     [2]int{p.MinDamage, p.MaxDamage},
		Resistance: map[string]float64{},
		Career:     careers.Resolve(id >= 128, classIndex(id)),
	}
	for _, dt := range []creature.DamageType{creature.DamageBlunt, creature.DamageSlashing, creature.DamagePiercing} {
		m, err := store.ResolveResistance(id, creature.BodyChest, int(dt), false, nil)
		if err != nil {
			return nil, err
		}
		rep.Resistance[dt.String()] = m
	}

	if draws > 0 {
		shares, err := sampleVariants(p, draws, seed, workers)
		if err != nil {
			return nil, err
		}
		rep.Variants = shares
	}
	return rep, nil
}

// classIndex maps a species id into the career key space: humanoid class
// enemies start at 128 and are keyed by class index, everything else is
// keyed by its own species id.
func classIndex(id int) int {
	if id >= 128 {
		return id - 128
	}
	return id
}

// sampleVariants draws the attack-variant selector many times and reports
// the observed share per variant next to its declared chance. The ordered
// override chain makes later alternates land under their declared
// percentage; this report makes that visible.
func sampleVariants(p *creature.SpeciesProfile, draws int, seed int64, workers int) (map[string]variantShare, error) {
	if workers < 1 {
		workers = 1
	}
	counts := make([]int, len(p.Alternates)+1)
	var mu sync.Mutex
	var firstErr error

	var wg sync.WaitGroup
	jobs := make(chan int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := util.New(seed + int64(workerID)*7919)
			local := make([]int, len(counts))
			for range jobs {
				sel, err := creature.SelectAttack(p, rng)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				local[sel.Variant]++
			}
			mu.Lock()
			for i, c := range local {
				counts[i] += c
			}
			mu.Unlock()
		}(w)
	}
	for i := 0; i < draws; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	out := make(map[string]variantShare, len(counts))
	out["primary"] = variantShare{Declared: 0, Observed: float64(counts[0]) / float64(draws)}
	for i, alt := range p.Alternates {
		key := fmt.Sprintf("alternate_%d", i+1)
		out[key] = variantShare{Declared: alt.Chance, Observed: float64(counts[i+1]) / float64(draws)}
	}
	return out, nil
}
