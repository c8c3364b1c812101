package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/arklib/redix"
	"github.com/arklib/redix/job"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			start := time.Now()
			if err := client.Ping(ctx); err != nil {
				return err
			}
			dumper.Print(map[string]any{
				"addrs":   client.Options().Addrs,
				"latency": time.Since(start).String(),
			})
			return nil
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a string value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			value, err := client.StringGet(ctx, args[0])
			if errors.Is(err, redis.Nil) {
				return fmt.Errorf("key %q not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		})
	},
}

var setTTL time.Duration

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a string value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			return client.StringSet(ctx, args[0], args[1], setTTL)
		})
	},
}

var delCmd = &cobra.Command{
	Use:   "del <key>...",
	Short: "Delete keys",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			n, err := client.KeyDelete(ctx, args...)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		})
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish <channel> <message>",
	Short: "Publish a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			n, err := client.Publish(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("delivered to %d subscribers\n", n)
			return nil
		})
	},
}

var subscribeCmd = &cobra.Command{
	Use:   "subscribe <channel>...",
	Short: "Print messages until interrupted",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			err := client.SubscribeFunc(ctx, func(ctx context.Context, msg *redis.Message) error {
				fmt.Printf("%s: %s\n", msg.Channel, msg.Payload)
				return nil
			}, args...)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	},
}

var (
	lockLease time.Duration
	lockWait  time.Duration
	lockHold  time.Duration
)

var lockCmd = &cobra.Command{
	Use:   "lock <key>",
	Short: "Take a lock, hold it, then release it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			token := uuid.NewString()
			hold := func(ctx context.Context) error {
				fmt.Printf("locked %s as %s\n", args[0], token)
				select {
				case <-ctx.Done():
				case <-time.After(lockHold):
				}
				return nil
			}

			var acquired bool
			var err error
			if lockWait > 0 {
				acquired, err = client.LockExecuteWait(ctx, args[0], token, lockLease, lockWait, hold)
			} else {
				acquired, err = client.LockExecute(ctx, args[0], token, lockLease, hold)
			}
			if err != nil {
				return err
			}
			if !acquired {
				holder, _, _ := client.LockQuery(ctx, args[0])
				return fmt.Errorf("lock %q is held by %s", args[0], holder)
			}
			return nil
		})
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List backed queue helpers",
}

var queuePushCmd = &cobra.Command{
	Use:   "push <queue> <value>...",
	Short: "Push values",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, arg)
			}
			n, err := client.QueuePush(ctx, args[0], values...)
			if err != nil {
				return err
			}
			fmt.Printf("length %d\n", n)
			return nil
		})
	},
}

var queuePopCmd = &cobra.Command{
	Use:   "pop <queue>",
	Short: "Pop the oldest value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			value, ok, err := client.QueuePop(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "queue is empty")
				return nil
			}
			fmt.Println(value)
			return nil
		})
	},
}

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Inspect job queues",
}

var jobListCmd = &cobra.Command{
	Use:   "list <queue>",
	Short: "Show queued jobs and pending retries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, client *redix.Client) error {
			queued, err := client.ListRange(ctx, args[0], 0, -1)
			if err != nil {
				return err
			}
			retries, err := job.NewRedisRetryDriver(client).Pending(ctx, args[0])
			if err != nil {
				return err
			}
			dumper.Print(map[string]any{
				"queued":  queued,
				"retries": retries,
			})
			return nil
		})
	},
}

func init() {
	setCmd.Flags().DurationVar(&setTTL, "ttl", 0, "expiry, 0 keeps the key")

	lockCmd.Flags().DurationVar(&lockLease, "lease", 30*time.Second, "lock expiry")
	lockCmd.Flags().DurationVar(&lockWait, "wait", 0, "how long to wait for the lock, 0 tries once")
	lockCmd.Flags().DurationVar(&lockHold, "hold", time.Second, "how long to hold the lock")

	queueCmd.AddCommand(queuePushCmd, queuePopCmd)
	jobCmd.AddCommand(jobListCmd)
}
