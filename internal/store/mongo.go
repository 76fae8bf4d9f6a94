package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrkit/interviewd/internal/people"
	"github.com/hrkit/interviewd/internal/scheduler"
	"github.com/hrkit/interviewd/internal/timeslot"
	"github.com/hrkit/interviewd/pkg/errors"
	"github.com/hrkit/interviewd/pkg/logger"
)

var (
	personNameIndex = mongo.IndexModel{
		Keys: bson.D{
			{Key: "role", Value: 1},
			{Key: "first_name", Value: 1},
			{Key: "last_name", Value: 1},
		},
		Options: options.Index().SetName("person_name").SetUnique(true),
	}

	// one document per canonical slot; the unique index is what turns
	// a create race into a detectable conflict
	slotIdentityIndex = mongo.IndexModel{
		Keys: bson.D{
			{Key: "day", Value: 1},
			{Key: "hour", Value: 1},
			{Key: "minute", Value: 1},
		},
		Options: options.Index().SetName("slot_identity").SetUnique(true),
	}
)

func NewMongo(ctx context.Context, cfg MongoConfig, log logger.Logger) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)
	persons := db.Collection(cfg.Collections.Persons)
	slots := db.Collection(cfg.Collections.Timeslots)

	_, err = persons.Indexes().CreateOne(ctx, personNameIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create person name index")
	}

	_, err = slots.Indexes().CreateOne(ctx, slotIdentityIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create slot identity index")
	}

	return &Mongo{
		persons: persons,
		slots:   slots,
		log:     log.With("mongo_store"),
	}, nil
}

type Mongo struct {
	persons *mongo.Collection
	slots   *mongo.Collection
	log     logger.Logger
}

func (m *Mongo) FindByID(ctx context.Context, id string) (*people.Person, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids behave like unknown ones
		return nil, nil
	}

	r := m.persons.FindOne(ctx, bson.M{"_id": oid})
	return m.decodePerson(r, id)
}

func (m *Mongo) FindByName(ctx context.Context, role people.Role, first, last string) (*people.Person, error) {
	r := m.persons.FindOne(ctx, bson.M{
		"role":       role,
		"first_name": first,
		"last_name":  last,
	})

	person, err := m.decodePerson(r, "")
	if person != nil {
		person.ID, err = m.lookupID(r)
	}
	return person, err
}

func (m *Mongo) Create(ctx context.Context, p people.Person) (string, error) {
	result, err := m.persons.InsertOne(ctx, p)
	if err != nil {
		return "", errors.WrapFail(err, "insert person")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Error("bad inserted id type")
	}

	return oid.Hex(), nil
}

func (m *Mongo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := m.persons.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, errors.WrapFail(err, "delete person")
	}

	return result.DeletedCount == 1, nil
}

func (m *Mongo) SetFree(ctx context.Context, id string, free []timeslot.Slot) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Errorf("malformed person id %q", id)
	}

	_, err = m.persons.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"free": free}},
	)
	return errors.WrapFail(err, "update availability")
}

func (m *Mongo) Find(ctx context.Context, day string, hour, minute int) (*timeslot.Slot, error) {
	r := m.slots.FindOne(ctx, bson.M{"day": day, "hour": hour, "minute": minute})

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find timeslot")
	}

	var slot timeslot.Slot
	err = r.Decode(&slot)
	if err != nil {
		return nil, errors.WrapFail(err, "decode timeslot")
	}

	return &slot, nil
}

func (m *Mongo) CreateSlot(ctx context.Context, slot timeslot.Slot) error {
	_, err := m.slots.InsertOne(ctx, slot)
	if mongo.IsDuplicateKeyError(err) {
		return scheduler.ErrSlotExists
	}

	return errors.WrapFail(err, "insert timeslot")
}

func (m *Mongo) Close(ctx context.Context) error {
	err := m.persons.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo connection")
}

// Slots adapts the timeslot collection to scheduler.SlotStore.
func (m *Mongo) Slots() scheduler.SlotStore {
	return mongoSlots{m}
}

type mongoSlots struct {
	m *Mongo
}

func (s mongoSlots) Find(ctx context.Context, day string, hour, minute int) (*timeslot.Slot, error) {
	return s.m.Find(ctx, day, hour, minute)
}

func (s mongoSlots) Create(ctx context.Context, slot timeslot.Slot) error {
	return s.m.CreateSlot(ctx, slot)
}

func (m *Mongo) decodePerson(r *mongo.SingleResult, id string) (*people.Person, error) {
	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find person")
	}

	var person people.Person
	err = r.Decode(&person)
	if err != nil {
		return nil, errors.WrapFail(err, "decode person")
	}

	person.ID = id
	return &person, nil
}

func (m *Mongo) lookupID(r *mongo.SingleResult) (string, error) {
	raw, err := r.Raw()
	if err != nil {
		return "", errors.WrapFail(err, "get raw bson")
	}

	oid, ok := raw.Lookup("_id").ObjectIDOK()
	if !ok {
		return "", errors.Error("bad id type")
	}

	return oid.Hex(), nil
}
