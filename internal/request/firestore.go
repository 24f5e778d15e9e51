package request

import (
	"context"
	"fmt"
	"time"

	"listingcrew/internal/domain"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	requestsCollection  = "requests"
	vendorOrdersSubColl = "selectedVendors"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository stores requests in the "requests" collection and
// vendor orders in each request's "selectedVendors" sub-collection.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (fr *firestoreRepository) requests() *firestore.CollectionRef {
	return fr.client.Collection(requestsCollection)
}

func (fr *firestoreRepository) CreateRequest(ctx context.Context, req *domain.ServiceRequest) error {
	ref := fr.requests().NewDoc()
	req.ID = ref.ID
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	if _, err := ref.Create(ctx, req); err != nil {
		return fmt.Errorf("could not insert request: %w", err)
	}
	return nil
}

func (fr *firestoreRepository) GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	doc, err := fr.requests().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	return decodeRequest(doc)
}

func (fr *firestoreRepository) ListRequestsByAgent(ctx context.Context, agentID string) ([]*domain.ServiceRequest, error) {
	iter := fr.requests().
		Where("userId", "==", agentID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.ServiceRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not iterate requests: %w", err)
		}
		req, err := decodeRequest(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func (fr *firestoreRepository) UpdateRequest(ctx context.Context, id string, fn MutateFunc) (*domain.ServiceRequest, error) {
	ref := fr.requests().Doc(id)
	var updated *domain.ServiceRequest

	err := fr.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		req, err := getInTx(tx, ref)
		if err != nil {
			return err
		}
		if err := fn(req); err != nil {
			return err
		}
		if err := tx.Set(ref, req); err != nil {
			return fmt.Errorf("could not update request: %w", err)
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SubmitRequest does the request write, the delete of the old orders and
// the creation of the new ones in a single transaction. New orders get
// fresh document ids so a delete and a create never target the same doc.
func (fr *firestoreRepository) SubmitRequest(ctx context.Context, id string, fn SubmitFunc) (*domain.ServiceRequest, error) {
	ref := fr.requests().Doc(id)
	orders := ref.Collection(vendorOrdersSubColl)
	var updated *domain.ServiceRequest

	err := fr.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// all reads must happen before the first write
		req, err := getInTx(tx, ref)
		if err != nil {
			return err
		}
		existing, err := tx.Documents(orders).GetAll()
		if err != nil {
			return fmt.Errorf("could not read vendor orders: %w", err)
		}

		newOrders, err := fn(req)
		if err != nil {
			return err
		}

		if err := tx.Set(ref, req); err != nil {
			return fmt.Errorf("could not update request: %w", err)
		}
		for _, doc := range existing {
			if err := tx.Delete(doc.Ref); err != nil {
				return fmt.Errorf("could not delete vendor order: %w", err)
			}
		}
		for _, o := range newOrders {
			if err := tx.Create(orders.NewDoc(), o); err != nil {
				return fmt.Errorf("could not write vendor order: %w", err)
			}
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (fr *firestoreRepository) ListVendorOrders(ctx context.Context, requestID string) ([]domain.SelectedVendorOrder, error) {
	iter := fr.requests().Doc(requestID).Collection(vendorOrdersSubColl).Documents(ctx)
	return collectOrders(iter)
}

func (fr *firestoreRepository) ListOrdersForVendor(ctx context.Context, vendorID string) ([]domain.SelectedVendorOrder, error) {
	iter := fr.client.CollectionGroup(vendorOrdersSubColl).
		Where("vendorId", "==", vendorID).
		Documents(ctx)
	return collectOrders(iter)
}

func (fr *firestoreRepository) Close() error {
	return fr.client.Close()
}

func getInTx(tx *firestore.Transaction, ref *firestore.DocumentRef) (*domain.ServiceRequest, error) {
	doc, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	return decodeRequest(doc)
}

func decodeRequest(doc *firestore.DocumentSnapshot) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	if err := doc.DataTo(&req); err != nil {
		return nil, fmt.Errorf("could not decode request %s: %w", doc.Ref.ID, err)
	}
	req.ID = doc.Ref.ID
	return &req, nil
}

func collectOrders(iter *firestore.DocumentIterator) ([]domain.SelectedVendorOrder, error) {
	defer iter.Stop()

	var out []domain.SelectedVendorOrder
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not iterate vendor orders: %w", err)
		}
		var o domain.SelectedVendorOrder
		if err := doc.DataTo(&o); err != nil {
			return nil, fmt.Errorf("could not decode vendor order: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}
