package reconcile

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"site-cms/core/database"
	"site-cms/core/database/testdb"
	"site-cms/core/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type widget struct {
	database.Model
	Name     string `gorm:"size:64;uniqueIndex"`
	Kind     string `gorm:"size:32;index"`
	Position int
	Parts    []part `gorm:"constraint:OnDelete:CASCADE"`
}

type part struct {
	database.Model
	WidgetID string `gorm:"size:36;index"`
	Label    string
}

func newDB(t *testing.T) *gorm.DB {
	return testdb.New(t, &widget{}, &part{})
}

func seed(t *testing.T, db *gorm.DB, rows ...widget) []widget {
	t.Helper()
	require.NoError(t, db.Create(&rows).Error)
	return rows
}

func names(t *testing.T, db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) []string {
	t.Helper()
	var rows []widget
	require.NoError(t, db.Scopes(scopes...).Scopes(database.Ordered).Find(&rows).Error)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestReplaceAll_ReplacesWholeTable(t *testing.T) {
	db := newDB(t)
	old := seed(t, db, widget{Name: "a", Position: 1}, widget{Name: "b", Position: 2})

	var inserted []widget
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		inserted, err = ReplaceAll(tx, AllRows, []widget{
			{Model: database.Model{ID: old[0].ID}, Name: "x", Position: 1},
			{Name: "y", Position: 2},
			{Name: "z", Position: 3},
		})
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "z"}, names(t, db))
	require.Len(t, inserted, 3)
	for _, w := range inserted {
		assert.NotEmpty(t, w.ID)
		assert.NotEqual(t, old[0].ID, w.ID, "incoming ids are discarded")
	}
}

func TestReplaceAll_EmptyPayloadEmptiesScope(t *testing.T) {
	db := newDB(t)
	seed(t, db, widget{Name: "a"}, widget{Name: "b"})

	err := db.Transaction(func(tx *gorm.DB) error {
		rows, err := ReplaceAll[widget](tx, AllRows, nil)
		assert.Empty(t, rows)
		return err
	})
	require.NoError(t, err)

	var count int64
	db.Model(&widget{}).Count(&count)
	assert.Zero(t, count)
}

func TestReplaceAll_ScopeLeavesOtherRowsAlone(t *testing.T) {
	db := newDB(t)
	seed(t, db,
		widget{Name: "home-1", Kind: "home", Position: 1},
		widget{Name: "about-1", Kind: "about", Position: 1},
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ReplaceAll(tx, Where("kind", "home"), []widget{
			{Name: "home-new", Kind: "home", Position: 1},
		})
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"home-new"}, names(t, db, Where("kind", "home")))
	assert.Equal(t, []string{"about-1"}, names(t, db, Where("kind", "about")))
}

func TestReplaceAll_InsertsChildren(t *testing.T) {
	db := newDB(t)
	seed(t, db, widget{Name: "old", Parts: []part{{Label: "gone"}}})

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ReplaceAll(tx, AllRows, []widget{
			{Name: "new", Parts: []part{{Label: "p1"}, {Label: "p2"}}},
		})
		return err
	})
	require.NoError(t, err)

	var parts []part
	require.NoError(t, db.Order("label").Find(&parts).Error)
	require.Len(t, parts, 2, "old children cascade away")
	var w widget
	require.NoError(t, db.Where("name = ?", "new").Take(&w).Error)
	for _, p := range parts {
		assert.Equal(t, w.ID, p.WidgetID)
	}
}

func TestReplaceAll_FailureKeepsPreviousContent(t *testing.T) {
	db := newDB(t)
	seed(t, db, widget{Name: "a", Position: 1}, widget{Name: "b", Position: 2})

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ReplaceAll(tx, AllRows, []widget{{Name: "dup"}, {Name: "dup"}})
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	assert.Equal(t, []string{"a", "b"}, names(t, db))
}

func TestReplaceAll_RollsBackOnInsertError(t *testing.T) {
	db, mock := testdb.Mock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `widgets` WHERE 1 = 1")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `widgets`")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ReplaceAll(tx, AllRows, []widget{{Name: "x"}})
		return err
	})
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 1, Position(nil, 0))
	assert.Equal(t, 4, Position(nil, 3))
	seven := 7
	assert.Equal(t, 7, Position(&seven, 0))
}

func TestBuildPlan(t *testing.T) {
	plan := BuildPlan(
		[]string{"a", "b", "c"},
		[]string{"a", "", "temp-1", "gone", "c"},
	)

	assert.Equal(t, []string{"b"}, plan.Deletes)
	require.Len(t, plan.Actions, 5)
	assert.Equal(t, ActionUpdate, plan.Actions[0].Type)
	assert.Equal(t, ActionCreate, plan.Actions[1].Type)
	assert.Equal(t, ActionCreate, plan.Actions[2].Type)
	assert.False(t, plan.Actions[2].Stale)
	assert.Equal(t, ActionCreate, plan.Actions[3].Type)
	assert.True(t, plan.Actions[3].Stale)
	assert.Equal(t, ActionUpdate, plan.Actions[4].Type)

	assert.Equal(t, Counts{Created: 3, Updated: 2, Deleted: 1}, plan.Summary())
	assert.Empty(t, plan.Duplicates)

	plan = BuildPlan([]string{"a"}, []string{"a", "temp-1", "a", "temp-1"})
	assert.Equal(t, []string{"a"}, plan.Duplicates)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder("temp-123"))
	assert.False(t, IsPlaceholder("4f1c"))
	assert.False(t, IsReal(""))
	assert.False(t, IsReal("temp-9"))
	assert.True(t, IsReal("4f1c"))
}

func TestReconcile_DiffsAgainstStoredRows(t *testing.T) {
	db := newDB(t)
	stored := seed(t, db, widget{Name: "keep"}, widget{Name: "drop"}, widget{Name: "also-drop"})

	incoming := []*widget{
		{Model: database.Model{ID: stored[0].ID}, Name: "keep-renamed"},
		{Model: database.Model{ID: "temp-1"}, Name: "fresh"},
		{Name: "fresh-no-id"},
	}

	var counts Counts
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		counts, err = Reconcile(tx, nil, "widget", incoming)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, Counts{Created: 2, Updated: 1, Deleted: 2}, counts)
	assert.Equal(t, len(incoming), counts.Created+counts.Updated)

	var kept widget
	require.NoError(t, db.Take(&kept, "id = ?", stored[0].ID).Error)
	assert.Equal(t, "keep-renamed", kept.Name)
	assert.WithinDuration(t, stored[0].CreatedAt, kept.CreatedAt, time.Second, "creation time is preserved")

	var total int64
	db.Model(&widget{}).Count(&total)
	assert.EqualValues(t, 3, total)
	assert.NotEqual(t, "temp-1", incoming[1].ID, "placeholder ids are never stored")
}

func TestReconcile_IsIdempotent(t *testing.T) {
	db := newDB(t)
	stored := seed(t, db, widget{Name: "a"}, widget{Name: "b"})

	payload := func() []*widget {
		return []*widget{
			{Model: database.Model{ID: stored[0].ID}, Name: "a"},
			{Model: database.Model{ID: stored[1].ID}, Name: "b"},
		}
	}

	for i := 0; i < 2; i++ {
		var counts Counts
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			var err error
			counts, err = Reconcile(tx, nil, "widget", payload())
			return err
		}))
		assert.Equal(t, Counts{Updated: 2}, counts)
	}
}

func TestReconcile_StaleIDIsCreatedWithWarning(t *testing.T) {
	db := newDB(t)
	core, logs := observer.New(zapcore.WarnLevel)

	var counts Counts
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		counts, err = Reconcile(tx, zap.New(core), "widget", []*widget{
			{Model: database.Model{ID: "deleted-elsewhere"}, Name: "ghost"},
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, Counts{Created: 1}, counts)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "deleted-elsewhere", entry.ContextMap()["id"])

	var w widget
	require.NoError(t, db.Take(&w, "name = ?", "ghost").Error)
	assert.NotEqual(t, "deleted-elsewhere", w.ID)
}

func TestReconcile_DuplicateIsConflict(t *testing.T) {
	db := newDB(t)
	seed(t, db, widget{Name: "a"})

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := Reconcile(tx, nil, "widget", []*widget{{Name: "b"}, {Name: "b"}})
		return err
	})
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindConflict))
	assert.Equal(t, "Duplicate widget detected", err.(*response.Error).Message)

	assert.Equal(t, []string{"a"}, names(t, db), "nothing committed")
}

func TestReconcile_RepeatedIDIsRejected(t *testing.T) {
	db := newDB(t)
	stored := seed(t, db, widget{Name: "a"}, widget{Name: "b"})

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := Reconcile(tx, nil, "widget", []*widget{
			{Model: database.Model{ID: stored[0].ID}, Name: "first"},
			{Model: database.Model{ID: stored[0].ID}, Name: "second"},
		})
		return err
	})
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindValidation))
	assert.ElementsMatch(t, []string{"a", "b"}, names(t, db), "nothing committed")
}

func TestReconcile_VanishedRowIsNotFound(t *testing.T) {
	db, mock := testdb.Mock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `widgets`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("w1"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `widgets` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := Reconcile(tx, nil, "widget", []*widget{{Model: database.Model{ID: "w1"}, Name: "x"}})
		return err
	})
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindNotFound))
	assert.Equal(t, "Widget not found", err.(*response.Error).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertByKey(t *testing.T) {
	db := newDB(t)

	created, err := UpsertByKey(db, "name", "hero", &widget{Name: "hero", Kind: "v1"})
	require.NoError(t, err)
	assert.True(t, created)

	var first widget
	require.NoError(t, db.Take(&first, "name = ?", "hero").Error)

	created, err = UpsertByKey(db, "name", "hero", &widget{Name: "hero", Kind: "v2"})
	require.NoError(t, err)
	assert.False(t, created)

	var second widget
	require.NoError(t, db.Take(&second, "name = ?", "hero").Error)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Kind)

	var count int64
	db.Model(&widget{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertByKey_KeepsFixedSingletonID(t *testing.T) {
	db := newDB(t)

	for _, kind := range []string{"first", "second"} {
		_, err := UpsertByKey(db, "id", "default", &widget{Model: database.Model{ID: "default"}, Name: "singleton", Kind: kind})
		require.NoError(t, err)
	}

	var rows []widget
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "default", rows[0].ID)
	assert.Equal(t, "second", rows[0].Kind)
}

func TestDeleteByID(t *testing.T) {
	db := newDB(t)
	stored := seed(t, db, widget{Name: "a", Parts: []part{{Label: "p"}}}, widget{Name: "b"})

	require.NoError(t, DeleteByID[widget](db, stored[0].ID, "Widget not found"))

	var parts int64
	db.Model(&part{}).Count(&parts)
	assert.Zero(t, parts, "children cascade")
	assert.Equal(t, []string{"b"}, names(t, db))

	err := DeleteByID[widget](db, stored[0].ID, "Widget not found")
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindNotFound))
	assert.Equal(t, "Widget not found", err.Error())
}
