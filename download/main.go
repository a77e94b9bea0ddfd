// Command download saves every uploaded playthrough from the database into a
// folder per user, so that they can be replayed with the game.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/marisvali/counters/world"
	"go.uber.org/zap"
)

func main() {
	outDir := flag.String("out", ".", "folder where recordings are saved")
	timeout := flag.Duration("timeout", time.Minute, "time limit for the query")
	flag.Parse()

	log, err := zap.NewDevelopment()
	Check(err)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db := ConnectToDbSql(ctx)
	defer func() { Check(db.Close()) }()
	DownloadRecordings(ctx, db, *outDir, log)
}

func DownloadRecordings(ctx context.Context, db *sql.DB, outDir string,
	log *zap.Logger) {
	rows, err := db.QueryContext(ctx, "SELECT "+
		"start_moment, "+
		"user, "+
		"release_version, "+
		"simulation_version, "+
		"input_version, "+
		"id, "+
		"playthrough "+
		"FROM playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	nSaved := 0
	for _, row := range dbRows {
		// Recordings made by the current version must load, anything else
		// is kept as it is for older builds of the game.
		if row.inputVersion == world.InputVersion {
			if _, err := world.DeserializePlaythrough(row.data); err != nil {
				log.Warn("skipping corrupted playthrough",
					zap.String("id", row.id.String()),
					zap.String("user", row.user), zap.Error(err))
				continue
			}
		}

		dir, err := RecordingDir(outDir, row.user)
		if err != nil {
			log.Warn("skipping playthrough", zap.String("id", row.id.String()),
				zap.Error(err))
			continue
		}
		Check(os.MkdirAll(dir, 0755))
		WriteFile(filepath.Join(dir, RecordingName(row)), row.data)
		nSaved++
	}
	log.Info("download finished", zap.Int("rows", len(dbRows)),
		zap.Int("saved", nSaved))
}

// RecordingDir is the folder of the recordings of user. User names come from
// the players, a name that would leave outDir is an error.
func RecordingDir(outDir, user string) (string, error) {
	if !filepath.IsLocal(user) {
		return "", fmt.Errorf("unsafe user name %q", user)
	}
	return filepath.Join(outDir, user), nil
}

// RecordingName is the name of the file of a playthrough, for example
// 20260418-153005.counters-1-1. The extension holds the simulation and input
// versions needed to replay it.
func RecordingName(row dbRow) string {
	m := row.startMoment
	return fmt.Sprintf("%d%02d%02d-%02d%02d%02d.counters-%d-%d", m.Year(),
		m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		row.simulationVersion, row.inputVersion)
}

func ConnectToDbSql(ctx context.Context) *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("COUNTERS_DBUSER"),
		Passwd:               os.Getenv("COUNTERS_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("COUNTERS_DBADDR"),
		DBName:               os.Getenv("COUNTERS_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	Check(db.PingContext(ctx))
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
