package queue

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type CmdQueue interface {
	GetCmdTasks() []*CmdTask
}

// GetTaskList collects "queue:task" commands from the *Queue fields of the
// struct queues points to. An empty filter or "all" selects every task.
func GetTaskList(queues any, filter ...string) map[string]*CmdTask {
	all := len(filter) == 0 || lo.Contains(filter, "all")
	tasks := make(map[string]*CmdTask)

	rQueues := reflect.ValueOf(queues).Elem()
	for i := 0; i < rQueues.NumField(); i++ {
		rQueue := rQueues.Field(i)
		if rQueue.Kind() != reflect.Pointer || rQueue.IsNil() || !rQueue.CanInterface() {
			continue
		}

		queue, ok := rQueue.Interface().(CmdQueue)
		if !ok {
			continue
		}

		for _, cmdTask := range queue.GetCmdTasks() {
			if all || lo.Contains(filter, cmdTask.Name) {
				tasks[cmdTask.Name] = cmdTask
			}
		}
	}
	return tasks
}

func TaskNames(queues any) []string {
	names := lo.Keys(GetTaskList(queues))
	sort.Strings(names)
	return names
}

func PrintList(w io.Writer, queues any) {
	_, _ = fmt.Fprintln(w, "tasks:")
	_, _ = fmt.Fprintln(w, "* all")
	for _, name := range TaskNames(queues) {
		_, _ = fmt.Fprintf(w, "* %s\n", name)
	}
}

// Run consumes the selected tasks until ctx is done or one fails.
func Run(ctx context.Context, queues any, tasks []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range GetTaskList(queues, tasks...) {
		task := task
		g.Go(func() error {
			return task.Run(gctx)
		})
	}
	return g.Wait()
}
