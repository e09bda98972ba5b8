package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

func setupTestBuildingService() (BuildingService, *testRepos) {
	repos := newTestRepos()
	svc := NewBuildingService(repos.repo, zap.NewNop())
	return svc, repos
}

func TestBuildingService_Delete_BlockedByRooms(t *testing.T) {
	svc, repos := setupTestBuildingService()
	repos.building.buildings["bld-A"] = &model.Building{BuildingID: "bld-A", Name: "A栋"}
	repos.room.rooms["room-101"] = &model.Room{
		RoomID:     "room-101",
		Name:       "101",
		BuildingID: "bld-A",
		RoomTypeID: "rt-001",
		BedCount:   4,
		Status:     model.RoomStatusAvailable,
	}

	err := svc.Delete(context.Background(), "bld-A")
	if !errors.Is(err, ErrBuildingHasRooms) {
		t.Errorf("期望 ErrBuildingHasRooms，实际: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "1 条引用") {
		t.Errorf("冲突错误应携带引用条数，实际: %v", err)
	}
}

func TestBuildingService_Delete_Success(t *testing.T) {
	svc, repos := setupTestBuildingService()
	repos.building.buildings["bld-A"] = &model.Building{BuildingID: "bld-A", Name: "A栋"}

	if err := svc.Delete(context.Background(), "bld-A"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := repos.building.buildings["bld-A"]; ok {
		t.Error("楼栋应已被删除")
	}
}
