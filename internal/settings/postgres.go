package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const selectConfigQuery = `
	SELECT location_id, enabled, driver_id,
	       api_url, ip_address, port,
	       api_token, api_login, api_password, kkm_password,
	       device_id, serial_number, terminal_id,
	       inn, operator_name, company_name, company_address,
	       vat_rate, default_timeout_ms, payment_timeout_ms,
	       auto_print_receipt, print_copy
	FROM fiscal_device_configs
	WHERE location_id = $1`

// PostgresStore reads FiscalDeviceConfig rows from the hosted settings
// database. One SELECT per gateway call, no caching.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach settings database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetByLocation(ctx context.Context, locationID string) (*FiscalDeviceConfig, error) {
	var (
		cfg         FiscalDeviceConfig
		apiURL      sql.NullString
		ipAddress   sql.NullString
		port        sql.NullInt64
		apiToken    sql.NullString
		apiLogin    sql.NullString
		apiPassword sql.NullString
		kkmPassword sql.NullString
		deviceID    sql.NullString
		serial      sql.NullString
		terminalID  sql.NullString
		inn         sql.NullString
		operator    sql.NullString
		company     sql.NullString
		address     sql.NullString
		vatRate     sql.NullFloat64
		defTimeout  sql.NullInt64
		payTimeout  sql.NullInt64
	)

	row := s.db.QueryRowContext(ctx, selectConfigQuery, locationID)
	err := row.Scan(
		&cfg.LocationID, &cfg.Enabled, &cfg.DriverID,
		&apiURL, &ipAddress, &port,
		&apiToken, &apiLogin, &apiPassword, &kkmPassword,
		&deviceID, &serial, &terminalID,
		&inn, &operator, &company, &address,
		&vatRate, &defTimeout, &payTimeout,
		&cfg.AutoPrintReceipt, &cfg.PrintCopy,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read fiscal device config: %w", err)
	}

	cfg.APIURL = apiURL.String
	cfg.IPAddress = ipAddress.String
	cfg.Port = int(port.Int64)
	cfg.APIToken = apiToken.String
	cfg.APILogin = apiLogin.String
	cfg.APIPassword = apiPassword.String
	cfg.KKMPassword = kkmPassword.String
	cfg.DeviceID = deviceID.String
	cfg.SerialNumber = serial.String
	cfg.TerminalID = terminalID.String
	cfg.INN = inn.String
	cfg.OperatorName = operator.String
	cfg.CompanyName = company.String
	cfg.CompanyAddress = address.String
	cfg.VATRate = vatRate.Float64
	cfg.DefaultTimeoutMs = int(defTimeout.Int64)
	cfg.PaymentTimeoutMs = int(payTimeout.Int64)

	return &cfg, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
