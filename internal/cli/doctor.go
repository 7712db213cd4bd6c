package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/sgarcia/romaday/internal/backup"
	"github.com/sgarcia/romaday/internal/storage"
	"github.com/sgarcia/romaday/internal/trip"
	"github.com/sgarcia/romaday/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: itinerary configuration
	result := validation.New().ValidateItinerary(ctx.Canon)
	if result.HasErrors() {
		fmt.Printf("❌ Itinerary configuration: FAIL\n%s", result.FormatReport())
		hasError = true
	} else if result.HasConflicts() {
		fmt.Printf("⚠ Itinerary configuration: %d warning(s)\n", len(result.Conflicts))
	} else {
		fmt.Printf("✓ Itinerary configuration: OK\n")
	}

	// Check 2: progress store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("⚠ Progress store: %v (will start from a blank slate)\n", err)
	} else {
		fmt.Printf("✓ Progress store: OK\n")
	}

	// Check 3: backups present (warning only)
	backups, err := backup.NewManager(ctx.Store.Path()).List()
	switch {
	case err != nil:
		fmt.Printf("⚠ Backups: cannot inspect (%v)\n", err)
	case len(backups) == 0:
		fmt.Printf("⚠ Backups: none found; run 'romaday backup create'\n")
	default:
		fmt.Printf("✓ Backups: %d present, newest %s\n",
			len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	// Check 4: no second process sharing the store
	if n, err := countSiblingProcesses(); err != nil {
		fmt.Printf("⚠ Process check: unavailable (%v)\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Process check: %d other romaday process(es) running; the store is single-writer\n", n)
	} else {
		fmt.Printf("✓ Process check: OK\n")
	}

	// Check 5: clock sanity against the trip date
	if today := time.Now().Format("2006-01-02"); today != trip.VisitDate {
		fmt.Printf("⚠ Clock: today is %s, trip date is %s (rehearsal mode)\n", today, trip.VisitDate)
	} else {
		fmt.Printf("✓ Clock: it is the day. In bocca al lupo.\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if _, err := ctx.Store.LoadCompletions(); err != nil && !errors.Is(err, storage.ErrNoData) {
		if errors.Is(err, storage.ErrCorrupt) {
			return fmt.Errorf("store is corrupt: %w", err)
		}
		return err
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok && sqliteStore.DB() != nil {
		var result int
		if err := sqliteStore.DB().QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query store: %w", err)
		}
	}
	return nil
}

// countSiblingProcesses looks for other live processes with our binary
// name. Two writers on one store file is the one concurrency hazard
// this app has.
func countSiblingProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == name {
			count++
		}
	}
	return count, nil
}
