package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"debategame/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of MongoDB. Debate and argument ids
// are integers drawn from a counters collection so records keep the
// relational-style ids the API exposes.
type MongoStore struct {
	users     *mongo.Collection
	debates   *mongo.Collection
	arguments *mongo.Collection
	counters  *mongo.Collection
}

func NewMongoStore(database *mongo.Database) (*MongoStore, error) {
	s := &MongoStore{
		users:     database.Collection("users"),
		debates:   database.Collection("debates"),
		arguments: database.Collection("arguments"),
		counters:  database.Collection("counters"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Usernames are the user identity and must be unique.
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create username index: %w", err)
	}

	_, err = s.arguments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "debateId", Value: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create debateId index: %w", err)
	}

	return s, nil
}

// nextSequence allocates the next integer id for the named entity.
func (s *MongoStore) nextSequence(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MongoStore) CreateDebate(ctx context.Context, debate *models.Debate) error {
	id, err := s.nextSequence(ctx, "debates")
	if err != nil {
		return err
	}
	debate.ID = id
	_, err = s.debates.InsertOne(ctx, debate)
	return err
}

func (s *MongoStore) FindDebateByID(ctx context.Context, id int64) (*models.Debate, error) {
	var debate models.Debate
	err := s.debates.FindOne(ctx, bson.M{"_id": id}).Decode(&debate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cursor, err := s.arguments.Find(
		ctx,
		bson.M{"debateId": id},
		options.Find().SetSort(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	debate.Arguments = []models.Argument{}
	if err := cursor.All(ctx, &debate.Arguments); err != nil {
		return nil, err
	}
	return &debate, nil
}

func (s *MongoStore) CreateArgument(ctx context.Context, argument *models.Argument) error {
	id, err := s.nextSequence(ctx, "arguments")
	if err != nil {
		return err
	}
	argument.ID = id
	_, err = s.arguments.InsertOne(ctx, argument)
	return err
}

func (s *MongoStore) LinkArgumentToDebate(ctx context.Context, debateID, argumentID int64) error {
	result, err := s.debates.UpdateOne(
		ctx,
		bson.M{"_id": debateID},
		bson.M{
			"$addToSet": bson.M{"argumentIds": argumentID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) LinkArgumentToUser(ctx context.Context, username string, argumentID int64) error {
	result, err := s.users.UpdateOne(
		ctx,
		bson.M{"username": username},
		bson.M{
			"$addToSet": bson.M{"argumentIds": argumentID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) LinkDebateToUser(ctx context.Context, username string, debateID int64) error {
	result, err := s.users.UpdateOne(
		ctx,
		bson.M{"username": username},
		bson.M{
			"$addToSet": bson.M{"debateIds": debateID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AdvanceDebateTurn performs a compare-and-swap on the turn holder: the
// filter matches only while `from` still holds the turn, so a concurrent
// submission that already advanced it surfaces as ErrStaleTurn instead of
// silently double-advancing.
func (s *MongoStore) AdvanceDebateTurn(ctx context.Context, debateID int64, from, to string) error {
	result, err := s.debates.UpdateOne(
		ctx,
		bson.M{"_id": debateID, "turnUsername": from},
		bson.M{"$set": bson.M{"turnUsername": to, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		err := s.debates.FindOne(ctx, bson.M{"_id": debateID}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return ErrStaleTurn
	}
	return nil
}

func (s *MongoStore) AttachArgumentScore(ctx context.Context, argumentID int64, score int) error {
	result, err := s.arguments.UpdateOne(
		ctx,
		bson.M{"_id": argumentID},
		bson.M{"$set": bson.M{"score": score, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
