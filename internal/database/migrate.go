package database

import (
	"context"
	"fmt"

	"blackeagles/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS notices (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		event_date DATE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_event_date ON schedules (event_date)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'contact',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS page_sections (
		id SERIAL PRIMARY KEY,
		page_name TEXT NOT NULL,
		section_id TEXT NOT NULL,
		section_type TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		link_url TEXT NOT NULL DEFAULT '',
		link_text TEXT NOT NULL DEFAULT '',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (page_name, section_id)
	)`,
	`CREATE TABLE IF NOT EXISTS banner_settings (
		id SERIAL PRIMARY KEY,
		page_name TEXT NOT NULL UNIQUE,
		background_image TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		button_text TEXT NOT NULL DEFAULT '',
		button_link TEXT NOT NULL DEFAULT '',
		title_font TEXT NOT NULL DEFAULT 'Arial, sans-serif',
		title_color TEXT NOT NULL DEFAULT '#ffffff',
		subtitle_color TEXT NOT NULL DEFAULT '#ffffff',
		description_color TEXT NOT NULL DEFAULT '#ffffff',
		vertical_position TEXT NOT NULL DEFAULT 'center',
		padding_top INTEGER NOT NULL DEFAULT 250,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS pilots (
		id SERIAL PRIMARY KEY,
		number INTEGER NOT NULL,
		position TEXT NOT NULL,
		callsign TEXT NOT NULL,
		generation TEXT NOT NULL,
		aircraft TEXT NOT NULL,
		photo_url TEXT NOT NULL DEFAULT '',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance_crew (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		callsign TEXT NOT NULL DEFAULT '',
		photo_url TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		callsign TEXT NOT NULL DEFAULT '',
		photo_url TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS commander_greetings (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		rank TEXT NOT NULL,
		callsign TEXT NOT NULL,
		generation TEXT NOT NULL,
		aircraft TEXT NOT NULL,
		photo_url TEXT NOT NULL DEFAULT '',
		greeting_text TEXT NOT NULL DEFAULT '',
		lang TEXT NOT NULL DEFAULT 'ko',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS home_contents (
		id SERIAL PRIMARY KEY,
		content_type TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content_data TEXT NOT NULL DEFAULT '',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS about_sections (
		id SERIAL PRIMARY KEY,
		section_type TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		lang TEXT NOT NULL DEFAULT 'ko',
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS gallery (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL,
		upload_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		order_num INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS site_images (
		id SERIAL PRIMARY KEY,
		image_key TEXT NOT NULL UNIQUE,
		image_name TEXT NOT NULL,
		image_path TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Tables lists every table Migrate owns, in creation order.
var Tables = []string{
	"notices", "schedules", "inquiries", "page_sections", "banner_settings",
	"pilots", "maintenance_crew", "candidates", "commander_greetings",
	"home_contents", "about_sections", "gallery", "site_images",
}

const teamIntro = "가상블랙이글스는 대한민국 블랙이글스의 다양한 특수비행을 통해 고도의 비행기량을 뽐내는 대한민국 가상 특수비행팀입니다."

// Migrate creates the schema idempotently and seeds default content rows.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	log := logger.WithComponent("repository")

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := seed(ctx, tx); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("database migrated", zap.Int("tables", len(Tables)))
	return nil
}

func seed(ctx context.Context, tx pgx.Tx) error {
	batch := &pgx.Batch{}

	sections := [][]any{
		{"home", "about", "text", "About Us", teamIntro, 1},
		{"about", "intro", "text", "팀 소개", "블랙이글스는 대한민국 공군의 자랑입니다.", 1},
		{"contact", "discord", "text", "Contact Us", "Discord ㅣ Johnson#4553", 1},
	}
	for _, s := range sections {
		batch.Queue(`
			INSERT INTO page_sections (page_name, section_id, section_type, title, content, order_num)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (page_name, section_id) DO NOTHING`, s...)
	}

	batch.Queue(`
		INSERT INTO banner_settings (page_name, background_image, title, subtitle, description, button_text, button_link)
		VALUES ('home', '/static/images/hero.jpg', 'Black Eagles', 'Republic Of Korea AirForce', $1, 'more', '#about')
		ON CONFLICT (page_name) DO NOTHING`, teamIntro)

	images := [][]any{
		{"hero_banner", "홈 배너 이미지", "/static/images/hero.jpg", "메인 페이지 상단 배너", "home"},
		{"about_banner", "팀소개 배너 이미지", "/static/images/hero.jpg", "팀소개 페이지 상단 배너", "about"},
		{"default_pilot", "기본 파일럿 이미지", "/static/images/default-pilot.jpg", "파일럿 기본 프로필", "about"},
		{"t50b_main", "T-50B 메인 이미지", "/static/images/t50b.jpg", "항공기 소개 이미지", "about"},
	}
	for _, img := range images {
		batch.Queue(`
			INSERT INTO site_images (image_key, image_name, image_path, description, category)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (image_key) DO NOTHING`, img...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	return seedWhenEmpty(ctx, tx)
}

// seedWhenEmpty fills tables that have no natural key only on first run, so
// rows an admin deleted stay deleted.
func seedWhenEmpty(ctx context.Context, tx pgx.Tx) error {
	seeds := []struct {
		table string
		query string
		rows  [][]any
	}{
		{
			table: "pilots",
			query: `INSERT INTO pilots (number, position, callsign, generation, aircraft, photo_url, order_num) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rows: [][]any{
				{1, "LEADER", "Bulta", "VBE 1기", "F-5", "/static/members/moon.jpeg", 1},
				{2, "LEFT WING", "Fox9", "VBE 2기", "F-18", "/static/members/moon.jpeg", 2},
				{3, "RIGHT WING", "Ace", "VBE 1기", "F-18", "/static/members/moon.jpeg", 3},
				{4, "Slot", "Moon", "VBE 1기", "F-5", "/static/members/moon.jpeg", 4},
				{5, "SYNCHRO-1", "ZeroDistance", "VBE 1기", "F-5", "/static/members/moon.jpeg", 5},
				{6, "SYNCHRO-2", "Lewis", "VBE 1기", "F-5", "/static/members/Lewis.jpg", 6},
				{7, "SOLO-1", "Sonic", "VBE 1기", "F-5", "/static/members/moon.jpeg", 7},
				{8, "SOLO-2", "Strike", "VBE 1기", "F-5", "/static/members/moon.jpeg", 8},
			},
		},
		{
			table: "home_contents",
			query: `INSERT INTO home_contents (content_type, title, content_data, order_num) VALUES ($1, $2, $3, $4)`,
			rows: [][]any{
				{"youtube", "Latest Video", "https://www.youtube.com/embed/dQw4w9WgXcQ", 1},
			},
		},
		{
			table: "about_sections",
			query: `INSERT INTO about_sections (section_type, title, content, image_url, order_num) VALUES ($1, $2, $3, $4, $5)`,
			rows: [][]any{
				{"overview", "가상 블랙이글스 소개", "가상 블랙이글스는 DCS World에서 활동하는 대한민국 가상 공군 특수비행팀입니다. 실제 블랙이글스의 정신과 전통을 계승하며, 정교한 편대비행과 에어쇼를 통해 뛰어난 비행실력을 선보입니다.", "", 0},
				{"mission", "임무", "우리의 임무는 대한민국 공군의 우수성을 전 세계에 알리고, 가상 비행 시뮬레이션을 통해 항공에 대한 관심과 이해를 높이는 것입니다. 또한 팀원들의 비행 실력 향상과 팀워크 강화를 목표로 합니다.", "", 1},
				{"aircraft_intro", "T-50B 골든이글", "T-50B는 대한민국이 자체 개발한 초음속 고등훈련기로, 블랙이글스 팀이 사용하는 항공기입니다. 우수한 기동성과 안정성을 자랑하며, 다양한 편대비행 기동을 수행할 수 있습니다.", "", 2},
				{"aircraft_specs", "T-50B 제원", "최대속도: 마하 1.5|전투행동반경: 1,851km|최대이륙중량: 12,300kg|엔진: F404-GE-102 터보팬|승무원: 2명|무장: 20mm 기관포, 공대공 미사일", "/static/images/t50b.jpg", 3},
				{"aircraft_features", "특징", "우수한 기동성|높은 안정성|효율적인 연료 소비|조종사 친화적 설계|다목적 운용 가능", "", 4},
			},
		},
		{
			table: "commander_greetings",
			query: `INSERT INTO commander_greetings (name, rank, callsign, generation, aircraft, photo_url, greeting_text, order_num) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rows: [][]any{
				{"Bulta", "COMMANDER", "#1 Bulta", "VBE 1기", "F-5", "/static/images/default-pilot.jpg", "안녕하십니까. 가상 블랙이글스 전대장입니다. 우리 팀은 대한민국 공군의 자랑스러운 전통을 계승하며, 최고의 비행 실력을 갖춘 정예 조종사들로 구성되어 있습니다.", 1},
			},
		},
		{
			table: "gallery",
			query: `INSERT INTO gallery (title, description, image_url, order_num) VALUES ($1, $2, $3, $4)`,
			rows: [][]any{
				{"편대비행 훈련", "T-50B 4기 편대비행 훈련 모습", "/static/images/formation1.jpg", 1},
				{"에어쇼 공연", "2024 서울 에어쇼 블랙이글스 공연", "/static/images/airshow1.jpg", 2},
			},
		},
	}

	for _, s := range seeds {
		var count int
		if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM "+s.table).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		for _, row := range s.rows {
			if _, err := tx.Exec(ctx, s.query, row...); err != nil {
				return fmt.Errorf("seed %s: %w", s.table, err)
			}
		}
	}
	return nil
}
