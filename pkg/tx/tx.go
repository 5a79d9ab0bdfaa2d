package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

// New создаёт менеджер транзакций с уровнем изоляции по умолчанию для всех Do.
func New(db pgxv5.Transactional, level pgx.TxIsoLevel) *Manager {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)

	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: txSettings,
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings, fn)
}
