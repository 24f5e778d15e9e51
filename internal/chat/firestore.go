package chat

import (
	"context"
	"fmt"

	"listingcrew/internal/domain"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	threadsCollection  = "threads"
	messagesCollection = "messages"
)

type firestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (fr *firestoreRepository) threads() *firestore.CollectionRef {
	return fr.client.Collection(threadsCollection)
}

func (fr *firestoreRepository) FindOrCreateThread(ctx context.Context, t *domain.ChatThread) (*domain.ChatThread, error) {
	q := fr.threads().Where("agent", "==", t.Agent).Where("vendor", "==", t.Vendor).Limit(1)
	var found *domain.ChatThread

	err := fr.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		found = nil
		docs, err := tx.Documents(q).GetAll()
		if err != nil {
			return fmt.Errorf("could not query threads: %w", err)
		}
		if len(docs) > 0 {
			found, err = decodeThread(docs[0])
			return err
		}

		ref := fr.threads().NewDoc()
		if err := tx.Create(ref, t); err != nil {
			return fmt.Errorf("could not create thread: %w", err)
		}
		created := *t
		created.ID = ref.ID
		found = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (fr *firestoreRepository) GetThread(ctx context.Context, id string) (*domain.ChatThread, error) {
	doc, err := fr.threads().Doc(id).Get(ctx)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return decodeThread(doc)
}

func (fr *firestoreRepository) ListThreads(ctx context.Context, uid string, role domain.Role) ([]*domain.ChatThread, error) {
	field := "agent"
	if role == domain.RoleVendor {
		field = "vendor"
	}

	iter := fr.threads().Where(field, "==", uid).OrderBy("last_time", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []*domain.ChatThread
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not iterate threads: %w", err)
		}
		t, err := decodeThread(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (fr *firestoreRepository) AddMessage(ctx context.Context, threadID string, msg *domain.ChatMessage) error {
	threadRef := fr.threads().Doc(threadID)
	msgRef := threadRef.Collection(messagesCollection).NewDoc()

	err := fr.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(threadRef); err != nil {
			return notFoundOr(err)
		}
		if err := tx.Create(msgRef, msg); err != nil {
			return fmt.Errorf("could not write message: %w", err)
		}
		return tx.Update(threadRef, []firestore.Update{
			{Path: "last_text", Value: msg.Text},
			{Path: "last_time", Value: msg.Time},
		})
	})
	if err != nil {
		return err
	}
	msg.ID = msgRef.ID
	msg.ThreadID = threadID
	return nil
}

func (fr *firestoreRepository) recentQuery(threadID string, limit int) firestore.Query {
	return fr.threads().Doc(threadID).Collection(messagesCollection).
		OrderBy("time", firestore.Desc).
		Limit(limit)
}

func (fr *firestoreRepository) RecentMessages(ctx context.Context, threadID string, limit int) ([]domain.ChatMessage, error) {
	docs, err := fr.recentQuery(threadID, limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("could not read messages: %w", err)
	}
	return decodeMessages(threadID, docs)
}

// WatchMessages follows the window with a snapshot listener.
func (fr *firestoreRepository) WatchMessages(ctx context.Context, threadID string, limit int, fn WindowFunc) error {
	snaps := fr.recentQuery(threadID, limit).Snapshots(ctx)
	defer snaps.Stop()

	for {
		snap, err := snaps.Next()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("message listener failed: %w", err)
		}
		docs, err := snap.Documents.GetAll()
		if err != nil {
			return fmt.Errorf("could not read message snapshot: %w", err)
		}
		msgs, err := decodeMessages(threadID, docs)
		if err != nil {
			return err
		}
		if err := fn(msgs); err != nil {
			return err
		}
	}
}

func (fr *firestoreRepository) Close() error {
	return fr.client.Close()
}

func notFoundOr(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return fmt.Errorf("could not get thread: %w", err)
}

func decodeThread(doc *firestore.DocumentSnapshot) (*domain.ChatThread, error) {
	var t domain.ChatThread
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("could not decode thread %s: %w", doc.Ref.ID, err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}

func decodeMessages(threadID string, docs []*firestore.DocumentSnapshot) ([]domain.ChatMessage, error) {
	msgs := make([]domain.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		var m domain.ChatMessage
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("could not decode message %s: %w", doc.Ref.ID, err)
		}
		m.ID = doc.Ref.ID
		m.ThreadID = threadID
		msgs = append(msgs, m)
	}
	return msgs, nil
}
