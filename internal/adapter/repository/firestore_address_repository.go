package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
)

type firestoreAddressRepository struct {
	client *firestore.Client
}

func NewFirestoreAddressRepository(client *firestore.Client) repository.AddressRepository {
	return &firestoreAddressRepository{
		client: client,
	}
}

func (r *firestoreAddressRepository) addresses(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("addresses")
}

func (r *firestoreAddressRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	iter := r.addresses(userID).Documents(ctx)
	defer iter.Stop()

	var addresses []*entity.Address
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.StoreUnavailable("address", err)
		}

		var address entity.Address
		if err := doc.DataTo(&address); err != nil {
			return nil, errors.Internal("Failed to parse address data", err)
		}
		address.ID = doc.Ref.ID
		addresses = append(addresses, &address)
	}

	return addresses, nil
}

func (r *firestoreAddressRepository) GetByID(ctx context.Context, userID, addressID string) (*entity.Address, error) {
	doc, err := r.addresses(userID).Doc(addressID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Address", err)
		}
		return nil, errors.StoreUnavailable("address", err)
	}

	var address entity.Address
	if err := doc.DataTo(&address); err != nil {
		return nil, errors.Internal("Failed to parse address data", err)
	}
	address.ID = doc.Ref.ID

	return &address, nil
}

func (r *firestoreAddressRepository) Create(ctx context.Context, userID string, address *entity.Address) error {
	doc := r.addresses(userID).NewDoc()
	address.ID = doc.ID
	if address.CreatedAt.IsZero() {
		address.CreatedAt = time.Now()
	}

	if _, err := doc.Set(ctx, address); err != nil {
		return errors.Internal("Failed to create address", err)
	}
	return nil
}

func (r *firestoreAddressRepository) Delete(ctx context.Context, userID, addressID string) error {
	if _, err := r.addresses(userID).Doc(addressID).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete address", err)
	}
	return nil
}

func (r *firestoreAddressRepository) SetDefaultFlag(ctx context.Context, userID, addressID string, isDefault bool) error {
	_, err := r.addresses(userID).Doc(addressID).Set(ctx, map[string]interface{}{
		"isDefault": isDefault,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update default address flag", err)
	}
	return nil
}
