package passwordreset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// MongoStorage implements Storage on a MongoDB users collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage creates a storage backed by the users collection of db.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the indexes the reset flows rely on: a unique
// email index and a sparse index on the pending reset token digest.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "password_reset_token", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (s *MongoStorage) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return &account, nil
}

func (s *MongoStorage) FindByResetTokenDigest(ctx context.Context, digest string, now time.Time) (*Account, error) {
	filter := bson.M{
		"password_reset_token":   digest,
		"password_reset_expires": bson.M{"$gt": now},
	}

	var account Account
	err := s.coll.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by reset token: %w", err)
	}
	return &account, nil
}

func (s *MongoStorage) SetSecret(ctx context.Context, accountID string, kind SecretKind, digest string, expiresAt time.Time) error {
	var update bson.M
	switch kind {
	case SecretOTP:
		update = bson.M{"$set": bson.M{
			"password_reset_otp_hash":     digest,
			"password_reset_otp_expires":  expiresAt,
			"password_reset_otp_attempts": 0,
		}}
	case SecretToken:
		update = bson.M{"$set": bson.M{
			"password_reset_token":   digest,
			"password_reset_expires": expiresAt,
		}}
	default:
		return fmt.Errorf("set secret: unknown kind %d", kind)
	}

	res, err := s.coll.UpdateByID(ctx, accountID, update)
	if err != nil {
		return fmt.Errorf("set %s secret: %w", kind, err)
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *MongoStorage) ClearSecret(ctx context.Context, accountID string, kind SecretKind) error {
	var unset bson.M
	switch kind {
	case SecretOTP:
		unset = bson.M{
			"password_reset_otp_hash":     "",
			"password_reset_otp_expires":  "",
			"password_reset_otp_attempts": "",
		}
	case SecretToken:
		unset = bson.M{
			"password_reset_token":   "",
			"password_reset_expires": "",
		}
	default:
		return fmt.Errorf("clear secret: unknown kind %d", kind)
	}

	if _, err := s.coll.UpdateByID(ctx, accountID, bson.M{"$unset": unset}); err != nil {
		return fmt.Errorf("clear %s secret: %w", kind, err)
	}
	return nil
}

func (s *MongoStorage) IncrementOTPAttempts(ctx context.Context, accountID string) (int, error) {
	update := bson.M{"$inc": bson.M{"password_reset_otp_attempts": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var account Account
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": accountID}, update, opts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrAccountNotFound
		}
		return 0, fmt.Errorf("increment otp attempts: %w", err)
	}
	return account.ResetOTPAttempts, nil
}

func (s *MongoStorage) CompleteReset(ctx context.Context, accountID string, passwordHash string, kind SecretKind) error {
	var unset bson.M
	switch kind {
	case SecretOTP:
		unset = bson.M{
			"password_reset_otp_hash":     "",
			"password_reset_otp_expires":  "",
			"password_reset_otp_attempts": "",
		}
	case SecretToken:
		unset = bson.M{
			"password_reset_token":   "",
			"password_reset_expires": "",
		}
	default:
		return fmt.Errorf("complete reset: unknown kind %d", kind)
	}

	update := bson.M{
		"$set":   bson.M{"password_hash": passwordHash},
		"$unset": unset,
	}

	res, err := s.coll.UpdateByID(ctx, accountID, update)
	if err != nil {
		return fmt.Errorf("complete %s reset: %w", kind, err)
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}
