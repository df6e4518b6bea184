package core

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/kwangc/repopulse/core/gitlog"
	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"
)

const (
	maxDebtResults    = 10
	largeFileLines    = 500
	hotspotSizeBytes  = 10 << 10
	hotspotMinChanges = 5
	secondsPerDay     = 86400
)

// GetTechnicalDebt samples the working tree and the full history for stale
// files, oversized files and complexity hotspots. The scan is bounded by
// cfg.MaxScanFiles per signal, so large repositories report on a sample
// rather than blocking on a full walk.
func GetTechnicalDebt(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.TechnicalDebtReport, error) {
	if err := contract.ValidateRepoPath(cfg.RepoPath); err != nil {
		return nil, err
	}
	files, err := client.ListFiles(ctx, cfg.RepoPath)
	if err != nil {
		return nil, err
	}
	if len(files) > cfg.MaxScanFiles {
		files = files[:cfg.MaxScanFiles]
	}

	now := time.Now().Unix()
	var stale []schema.StaleFile
	totalAge := 0
	aged := 0
	for _, file := range files {
		ts, err := client.LastChangeUnix(ctx, cfg.RepoPath, file)
		if err != nil || ts == 0 {
			continue
		}
		days := int((now - ts) / secondsPerDay)
		totalAge += days
		aged++
		if days > cfg.StaleDays {
			stale = append(stale, schema.StaleFile{File: file, DaysSinceLastChange: days})
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		if stale[i].DaysSinceLastChange != stale[j].DaysSinceLastChange {
			return stale[i].DaysSinceLastChange > stale[j].DaysSinceLastChange
		}
		return stale[i].File < stale[j].File
	})
	if len(stale) > maxDebtResults {
		stale = stale[:maxDebtResults]
	}

	var averageFileAge *int
	if aged > 0 {
		avg := int(math.Round(float64(totalAge) / float64(aged)))
		averageFileAge = &avg
	}

	var large []schema.LargeFile
	sizes := make(map[string]int64, len(files))
	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(cfg.RepoPath, file))
		if err != nil {
			continue
		}
		sizes[file] = int64(len(data))
		lines := bytes.Count(data, []byte("\n"))
		if len(data) > 0 && data[len(data)-1] != '\n' {
			lines++
		}
		if lines > largeFileLines {
			large = append(large, schema.LargeFile{File: file, Lines: lines})
		}
	}
	sort.Slice(large, func(i, j int) bool {
		if large[i].Lines != large[j].Lines {
			return large[i].Lines > large[j].Lines
		}
		return large[i].File < large[j].File
	})
	if len(large) > maxDebtResults {
		large = large[:maxDebtResults]
	}

	// Hotspot churn comes from the full history, not a dated window.
	churnOut, err := client.FileLog(ctx, cfg.RepoPath, contract.LogQuery{})
	if err != nil {
		return nil, err
	}
	counts, _ := gitlog.CountFileTouches(churnOut)

	var hotspots []schema.Hotspot
	for file, size := range sizes {
		changes := counts[file]
		if size > hotspotSizeBytes && changes > hotspotMinChanges {
			hotspots = append(hotspots, schema.Hotspot{File: file, Changes: changes, SizeBytes: size})
		}
	}
	sort.Slice(hotspots, func(i, j int) bool {
		si := hotspots[i].SizeBytes * int64(hotspots[i].Changes)
		sj := hotspots[j].SizeBytes * int64(hotspots[j].Changes)
		if si != sj {
			return si > sj
		}
		return hotspots[i].File < hotspots[j].File
	})
	if len(hotspots) > maxDebtResults {
		hotspots = hotspots[:maxDebtResults]
	}

	return &schema.TechnicalDebtReport{
		StaleFiles:         stale,
		LargeFiles:         large,
		ComplexityHotspots: hotspots,
		AverageFileAge:     averageFileAge,
	}, nil
}
