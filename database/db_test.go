package database

import (
	"testing"

	"quote-ui/database/model"
)

func TestInitSeedsSingleAdmin(t *testing.T) {
	if err := InitTestDB(); err != nil {
		t.Fatalf("InitTestDB() err = %v", err)
	}
	// Re-running init must not seed a second admin.
	if err := InitTestDB(); err != nil {
		t.Fatalf("second InitTestDB() err = %v", err)
	}

	var count int64
	err := GetDB().Model(model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count admins err = %v", err)
	}
	if count != 1 {
		t.Errorf("admin count = %d, expected 1", count)
	}

	admin := &model.User{}
	err = GetDB().Model(model.User{}).
		Where("email = ?", defaultAdminEmail).
		First(admin).Error
	if err != nil {
		t.Fatalf("load seeded admin err = %v", err)
	}
	if admin.Password != defaultAdminPassword || admin.Name != defaultAdminName {
		t.Errorf("seeded admin fields unexpected: %+v", admin)
	}
}
