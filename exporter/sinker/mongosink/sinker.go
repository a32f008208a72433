// Copyright 2025 The x12d Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mongosink persists AuditRecords to a MongoDB collection, for
// deployments that want queryable long-term storage of every validated
// interchange.
package mongosink

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x12d/x12d/exporter"
)

func init() {
	exporter.Register("mongo", New)
}

type Sinker struct {
	cli  *mongo.Client
	coll *mongo.Collection
	cfg  *exporter.MongoConfig
}

func New(conf exporter.Config) (exporter.Sinker, error) {
	cfg := &conf.Mongo
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Sinker{
		cli:  cli,
		coll: cli.Database(cfg.Database).Collection(cfg.Collection),
		cfg:  cfg,
	}, nil
}

func (s *Sinker) Name() string {
	return "mongo"
}

func (s *Sinker) Sink(record exporter.AuditRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	_, err := s.coll.InsertOne(ctx, bson.M{
		"run_id":          record.RunID,
		"source":          record.Source,
		"document":        record.Document,
		"bytes_read":      record.Stats.BytesRead,
		"segments_parsed": record.Stats.SegmentsParsed,
		"buffer_resizes":  record.Stats.BufferResizes,
		"findings":        record.Findings,
		"timestamp":       record.Timestamp.Format(time.RFC3339Nano),
	})
	return err
}

func (s *Sinker) Close() error {
	return s.cli.Disconnect(context.Background())
}
