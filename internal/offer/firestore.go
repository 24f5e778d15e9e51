package offer

import (
	"context"
	"fmt"

	"listingcrew/internal/domain"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const offersCollection = "offers"

type firestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (fr *firestoreRepository) CreateOffer(ctx context.Context, o *domain.Offer) error {
	ref := fr.client.Collection(offersCollection).NewDoc()
	o.ID = ref.ID
	if _, err := ref.Create(ctx, o); err != nil {
		return fmt.Errorf("could not insert offer: %w", err)
	}
	return nil
}

func (fr *firestoreRepository) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	doc, err := fr.client.Collection(offersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return decodeOffer(doc)
}

func (fr *firestoreRepository) UpdateOffer(ctx context.Context, id string, fn MutateFunc) (*domain.Offer, error) {
	ref := fr.client.Collection(offersCollection).Doc(id)
	var updated *domain.Offer

	err := fr.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return notFoundOr(err)
		}
		o, err := decodeOffer(doc)
		if err != nil {
			return err
		}
		if err := fn(o); err != nil {
			return err
		}
		if err := tx.Set(ref, o); err != nil {
			return fmt.Errorf("could not update offer: %w", err)
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (fr *firestoreRepository) DeleteOffer(ctx context.Context, id string, check MutateFunc) error {
	ref := fr.client.Collection(offersCollection).Doc(id)

	return fr.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return notFoundOr(err)
		}
		o, err := decodeOffer(doc)
		if err != nil {
			return err
		}
		if err := check(o); err != nil {
			return err
		}
		if err := tx.Delete(ref); err != nil {
			return fmt.Errorf("could not delete offer: %w", err)
		}
		return nil
	})
}

func (fr *firestoreRepository) ListOffers(ctx context.Context, uid string, role domain.Role, st domain.OfferStatus) ([]*domain.Offer, error) {
	field := "agentId"
	if role == domain.RoleVendor {
		field = "vendorId"
	}

	q := fr.client.Collection(offersCollection).Where(field, "==", uid)
	if st != "" {
		q = q.Where("status", "==", string(st))
	}
	iter := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []*domain.Offer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not iterate offers: %w", err)
		}
		o, err := decodeOffer(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (fr *firestoreRepository) Close() error {
	return fr.client.Close()
}

func notFoundOr(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return fmt.Errorf("could not get offer: %w", err)
}

func decodeOffer(doc *firestore.DocumentSnapshot) (*domain.Offer, error) {
	var o domain.Offer
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("could not decode offer %s: %w", doc.Ref.ID, err)
	}
	o.ID = doc.Ref.ID
	return &o, nil
}
