package orm

import (
	"log"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/pescuma/eotracker/lib/consoles"
	"github.com/pescuma/eotracker/lib/model"
	"github.com/pescuma/eotracker/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	config *map[string]string

	sqlConfigs map[string]*sqlConfig
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	// sqlite only allows one writer and each :memory: connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlSnapshot{},
		&sqlOrder{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "migrate database")
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) LoadLatestSnapshot() (*model.Snapshot, []*model.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var snapshots []*sqlSnapshot
	err := s.db.Order("imported_at desc").Limit(1).Find(&snapshots).Error
	if err != nil {
		return nil, nil, err
	}

	if len(snapshots) == 0 {
		return nil, nil, storages.ErrNoSnapshot
	}

	snapshot := snapshots[0]

	s.console.Printf("Loading snapshot %v...\n", snapshot.ID)

	var orders []*sqlOrder
	err = s.db.Where("snapshot_id = ?", snapshot.ID).Order("position").Find(&orders).Error
	if err != nil {
		return nil, nil, err
	}

	return snapshot.ToModel(), lo.Map(orders, func(o *sqlOrder, _ int) *model.Order { return o.ToModel() }), nil
}

func (s *gormStorage) ListSnapshots() ([]*model.Snapshot, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var snapshots []*sqlSnapshot
	err := s.db.Order("imported_at desc").Find(&snapshots).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(snapshots, func(i *sqlSnapshot, _ int) *model.Snapshot { return i.ToModel() }), nil
}

func (s *gormStorage) WriteSnapshot(snapshot *model.Snapshot, orders []*model.Order, progress func(int)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot.Orders = len(orders)

	sqlOrders := make([]*sqlOrder, 0, len(orders))
	for i, o := range orders {
		sqlOrders = append(sqlOrders, newSqlOrder(snapshot.ID, i, o))
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(newSqlSnapshot(snapshot)).Error
		if err != nil {
			return err
		}

		for _, chunk := range lo.Chunk(sqlOrders, 300) {
			err = tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&chunk).Error
			if err != nil {
				return err
			}

			if progress != nil {
				progress(len(chunk))
			}
		}

		return nil
	})
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	result := map[string]string{}

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(sqlConfigs)

	for _, sc := range sqlConfigs {
		result[sc.Key] = sc.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config == nil {
		return nil
	}

	var sqlConfigs []*sqlConfig
	for k, v := range *s.config {
		sc := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, sc) {
			sqlConfigs = append(sqlConfigs, sc)
		}
	}

	if len(sqlConfigs) == 0 {
		return nil
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
}

func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if ok && reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}

func compositeKey(ids ...string) string {
	return strings.Join(ids, "\n")
}

// NamingStrategy drops the sql prefix of the row structs from table names.
type NamingStrategy struct {
	schema.NamingStrategy
}

func (n *NamingStrategy) TableName(table string) string {
	return n.NamingStrategy.TableName(strings.TrimPrefix(table, "sql"))
}
