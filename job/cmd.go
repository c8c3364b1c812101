package job

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sort"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type CmdJob interface {
	GetCmd() *Cmd
}

type CmdJobs = map[string]*Cmd

// GetListByFilter collects the *Job fields of the struct jobs points to.
// An empty filter or "all" selects every job.
func GetListByFilter(jobs any, filter ...string) CmdJobs {
	cmdJobs := make(CmdJobs)

	rJobs := reflect.ValueOf(jobs).Elem()
	for i := 0; i < rJobs.NumField(); i++ {
		rJob := rJobs.Field(i)
		if rJob.Kind() != reflect.Pointer || rJob.IsNil() || !rJob.CanInterface() {
			continue
		}

		job, ok := rJob.Interface().(CmdJob)
		if !ok {
			continue
		}

		cmdJob := job.GetCmd()
		if len(filter) > 0 && !lo.Contains(filter, "all") && !lo.Contains(filter, cmdJob.Name) {
			continue
		}
		cmdJobs[cmdJob.Name] = cmdJob
	}
	return cmdJobs
}

func GetList(jobs any) CmdJobs {
	return GetListByFilter(jobs)
}

func Names(jobs any) []string {
	names := lo.Keys(GetList(jobs))
	sort.Strings(names)
	return names
}

func PrintList(w io.Writer, jobs any) {
	_, _ = fmt.Fprintln(w, "jobs:")
	_, _ = fmt.Fprintln(w, "* all")
	for _, name := range Names(jobs) {
		_, _ = fmt.Fprintf(w, "* %s\n", name)
	}
}

// Run runs the selected jobs until ctx is done or one fails.
func Run(ctx context.Context, jobs any, names []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, job := range GetListByFilter(jobs, names...) {
		job := job
		g.Go(func() error {
			return job.Run(gctx)
		})
	}
	return g.Wait()
}

// RunRetry re-pushes due retries of the selected jobs every interval until
// ctx is done.
func RunRetry(ctx context.Context, jobs any, names []string, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	jobList := GetListByFilter(jobs, names...)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		g, gctx := errgroup.WithContext(ctx)
		for _, job := range jobList {
			job := job
			g.Go(func() error {
				if err := job.Retry(gctx); err != nil {
					return fmt.Errorf("[job.retry] name: %s, error: %w", job.Name, err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil && ctx.Err() == nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
