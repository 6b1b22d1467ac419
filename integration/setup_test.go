package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/go-sql-driver/mysql"
)

func setupMySQL(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.4",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=test",
			"MYSQL_DATABASE=test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(180) //nolint:errcheck

	dsn := fmt.Sprintf("root:test@tcp(%s)/test?multiStatements=true", resource.GetHostPort("3306/tcp"))

	pool.MaxWait = 150 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

// createPlayersTables creates a players table with 8 players and the guilds
// some of them belong to.
func createPlayersTables(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`
		CREATE TABLE guilds (
			id int PRIMARY KEY,
			name varchar(32) NOT NULL
		);
		CREATE TABLE players (
			id int PRIMARY KEY,
			name varchar(32) NOT NULL,
			guild_id int NULL,
			level int NOT NULL,
			class varchar(32) NOT NULL,
			mount varchar(32) NULL,
			active boolean NOT NULL
		);
	`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`
		INSERT INTO guilds (id, name) VALUES
			(1, 'red'),
			(2, 'blue'),
			(3, 'green');
		INSERT INTO players
			(id, name,      guild_id, level, class,     mount,     active) VALUES
			(1,  'Alice',   1,        10,    'warrior', 'horse',   TRUE),
			(2,  'Bob',     1,        20,    'mage',    'horse',   FALSE),
			(3,  'Charlie', 2,        30,    'rogue',   NULL,      TRUE),
			(4,  'David',   2,        40,    'warrior', NULL,      TRUE),
			(5,  'Eve',     3,        50,    'mage',    'griffon', FALSE),
			(6,  'Frank',   3,        60,    'rogue',   'griffon', TRUE),
			(7,  'Grace',   NULL,     70,    'warrior', 'dragon',  TRUE),
			(8,  'Hank',    NULL,     80,    'mage',    'dragon',  FALSE);
	`); err != nil {
		t.Fatal(err)
	}
}

func queryIDs(t *testing.T, db *sql.DB, query string) []int {
	t.Helper()

	rows, err := db.Query(query)
	if err != nil {
		t.Fatalf("%s: %v", query, err)
	}
	defer rows.Close()
	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	return ids
}
