package entries

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hcgdev/journal-api/business/v1/entry"
	"github.com/hcgdev/journal-api/sys"
	"gocloud.dev/pubsub"
)

// Consume receives entry events from sub until ctx is cancelled. Create
// events are imported into the named user's journal; anything else is logged
// and acked.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var recvErr error
	for {
		message, err := sub.Receive(ctx)
		if err != nil {
			recvErr = err
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e entry.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				if e.User == "" {
					logger.Error("create event missing user")
					return
				}

				var data entry.NewEntry
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &data)

				if err := createEntry(ctx, e.User, data); err != nil {
					logger.Errorf("failed to import entry %+v: err: %s", e.Data, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	// drain: every worker slot held means every handler returned
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if recvErr != nil && !errors.Is(recvErr, context.Canceled) {
		return recvErr
	}

	return nil
}

func createEntry(ctx context.Context, user string, data entry.NewEntry) error {
	entries, err := entry.Load(ctx, user)
	if err != nil {
		return err
	}
	entries, _, err = entry.Create(entries, data)
	if err != nil {
		return err
	}
	return entry.Save(ctx, user, entries)
}
