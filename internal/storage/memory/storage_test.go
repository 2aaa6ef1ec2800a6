package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/graretg02/Superbowl-app2/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, "state", `{"team1":"Patriots"}`)
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, "state")
	s.Require().NoError(err)
	s.Equal(`{"team1":"Patriots"}`, value)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestSetOverwrites() {
	_ = s.storage.Set(s.ctx, "view", "grid")
	_ = s.storage.Set(s.ctx, "view", "settings")

	value, err := s.storage.Get(s.ctx, "view")
	s.Require().NoError(err)
	s.Equal("settings", value)
	s.Equal(2, s.storage.WriteCount("view"))
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Set(s.ctx, "active", "participant-1")

	err := s.storage.Delete(s.ctx, "active")
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, "active")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestDeleteMissingKey() {
	err := s.storage.Delete(s.ctx, "missing")
	s.NoError(err)
}
