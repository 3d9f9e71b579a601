package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	client       *mongo.Client
	users        *mongo.Collection
	companies    *mongo.Collection
	jobs         *mongo.Collection
	applications *mongo.Collection
}

// NewMongoStore connects, pings, and ensures the unique indexes.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(database)
	s := &MongoStore{
		client:       client,
		users:        db.Collection("users"),
		companies:    db.Collection("companies"),
		jobs:         db.Collection("jobs"),
		applications: db.Collection("applications"),
	}
	if err := s.ensureIndexes(connectCtx); err != nil {
		return nil, err
	}
	return s, nil
}

// Close disconnects from the database.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes creates the unique indexes that arbitrate concurrent
// check-then-act writes.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "mobileNumber", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	_, err = s.companies.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "companyName", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "companyEmail", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("ensure company indexes: %w", err)
	}
	_, err = s.jobs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "addedBy", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure job indexes: %w", err)
	}
	_, err = s.applications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "jobId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure application indexes: %w", err)
	}
	return nil
}

func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// users

func (s *MongoStore) CreateUser(ctx context.Context, u *User) error {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert user: %w", mapWriteErr(err))
	}
	return nil
}

func (s *MongoStore) UserByID(ctx context.Context, id primitive.ObjectID) (User, error) {
	var u User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *MongoStore) UserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *MongoStore) UsersByRecoveryEmail(ctx context.Context, email string) ([]User, error) {
	cur, err := s.users.Find(ctx, bson.M{"recoveryEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find users by recovery email: %w", err)
	}
	var out []User
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

func (s *MongoStore) UpdateUser(ctx context.Context, u User) error {
	u.UpdatedAt = time.Now().UTC()
	res, err := s.users.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("update user: %w", mapWriteErr(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// companies

func (s *MongoStore) CreateCompany(ctx context.Context, c *Company) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.companies.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert company: %w", mapWriteErr(err))
	}
	return nil
}

func (s *MongoStore) CompanyByID(ctx context.Context, id primitive.ObjectID) (Company, error) {
	var c Company
	err := s.companies.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, fmt.Errorf("find company: %w", err)
	}
	return c, nil
}

func (s *MongoStore) CompanyByHR(ctx context.Context, hrID primitive.ObjectID) (Company, error) {
	var c Company
	err := s.companies.FindOne(ctx, bson.M{"companyHR": hrID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, fmt.Errorf("find company by hr: %w", err)
	}
	return c, nil
}

func (s *MongoStore) CompanyByName(ctx context.Context, name string) (Company, error) {
	var c Company
	filter := bson.M{"companyName": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}
	err := s.companies.FindOne(ctx, filter).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, fmt.Errorf("find company by name: %w", err)
	}
	return c, nil
}

func (s *MongoStore) SearchCompaniesByName(ctx context.Context, name string) ([]Company, error) {
	filter := bson.M{"companyName": primitive.Regex{
		Pattern: regexp.QuoteMeta(name),
		Options: "i",
	}}
	cur, err := s.companies.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	var out []Company
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return out, nil
}

func (s *MongoStore) UpdateCompany(ctx context.Context, c Company) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := s.companies.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update company: %w", mapWriteErr(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.companies.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// jobs

func (s *MongoStore) CreateJob(ctx context.Context, j *Job) error {
	now := time.Now().UTC()
	j.ID = primitive.NewObjectID()
	j.CreatedAt = now
	j.UpdatedAt = now
	if _, err := s.jobs.InsertOne(ctx, j); err != nil {
		return fmt.Errorf("insert job: %w", mapWriteErr(err))
	}
	return nil
}

func (s *MongoStore) JobByID(ctx context.Context, id primitive.ObjectID) (Job, error) {
	var j Job
	err := s.jobs.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if err == mongo.ErrNoDocuments {
		return Job{}, ErrNotFound
	}
	if err != nil {
		return Job{}, fmt.Errorf("find job: %w", err)
	}
	return j, nil
}

func (s *MongoStore) JobsByOwner(ctx context.Context, owner primitive.ObjectID) ([]Job, error) {
	cur, err := s.jobs.Find(ctx, bson.M{"addedBy": owner})
	if err != nil {
		return nil, fmt.Errorf("find jobs by owner: %w", err)
	}
	var out []Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return out, nil
}

func (s *MongoStore) FilterJobs(ctx context.Context, f JobFilter) ([]Job, error) {
	filter := bson.M{}
	if f.WorkingTime != "" {
		filter["workingTime"] = f.WorkingTime
	}
	if f.JobLocation != "" {
		filter["jobLocation"] = f.JobLocation
	}
	if f.SeniorityLevel != "" {
		filter["seniorityLevel"] = f.SeniorityLevel
	}
	if f.JobTitle != "" {
		filter["jobTitle"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(f.JobTitle),
			Options: "i",
		}
	}
	if len(f.TechnicalSkills) > 0 {
		filter["technicalSkills"] = bson.M{"$in": f.TechnicalSkills}
	}
	cur, err := s.jobs.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("filter jobs: %w", err)
	}
	var out []Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return out, nil
}

func (s *MongoStore) UpdateJob(ctx context.Context, j Job) error {
	j.UpdatedAt = time.Now().UTC()
	res, err := s.jobs.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
	if err != nil {
		return fmt.Errorf("update job: %w", mapWriteErr(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteJob(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.jobs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// applications

func (s *MongoStore) CreateApplication(ctx context.Context, a *Application) error {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	if _, err := s.applications.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert application: %w", mapWriteErr(err))
	}
	return nil
}

func (s *MongoStore) ApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]Application, error) {
	cur, err := s.applications.Find(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	var out []Application
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return out, nil
}
