package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

// ProgressFunc is called while months are being built.
// current is the number of months finished so far, total is the total count.
type ProgressFunc func(current, total int)

// MonthRef names one calendar month.
type MonthRef struct {
	Year  int
	Month time.Month
}

// Next returns the month after m.
func (m MonthRef) Next() MonthRef {
	if m.Month == time.December {
		return MonthRef{Year: m.Year + 1, Month: time.January}
	}
	return MonthRef{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the month before m.
func (m MonthRef) Prev() MonthRef {
	if m.Month == time.January {
		return MonthRef{Year: m.Year - 1, Month: time.December}
	}
	return MonthRef{Year: m.Year, Month: m.Month - 1}
}

// String formats m as YYYY-MM.
func (m MonthRef) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) MonthRef {
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (MonthRef, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthRef{}, err
	}
	return MonthOf(t), nil
}

// BuildMonths builds count consecutive month grids starting at start.
// Grids are independent, so they are built on a bounded worker pool and
// returned in calendar order.
func BuildMonths(rec model.BudgetRecord, start MonthRef, count int, fallback decimal.Decimal, progressFn ProgressFunc) []model.MonthGrid {
	if count <= 0 {
		return nil
	}

	refs := make([]MonthRef, count)
	refs[0] = start
	for i := 1; i < count; i++ {
		refs[i] = refs[i-1].Next()
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > count {
		numWorkers = count
	}

	work := make(chan int, count)
	grids := make([]model.MonthGrid, count)
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range refs {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				grids[idx] = BuildMonthWithDefault(refs[idx].Year, refs[idx].Month, rec, fallback)
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), count)
				}
			}
		}()
	}

	wg.Wait()
	return grids
}

// UpcomingReminders collects reminders across grids whose reminder date is
// on or after from.
func UpcomingReminders(grids []model.MonthGrid, leadDays int, from time.Time) []model.Reminder {
	cutoff := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	var out []model.Reminder
	for _, g := range grids {
		for _, r := range Reminders(g, leadDays) {
			if r.Date.Before(cutoff) {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}
