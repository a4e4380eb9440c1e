package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/nftmart/goclient/domain"
)

// Session is the signing capability of the user's wallet. One session is
// established per process lifetime and injected into every component that
// needs chain access; it is never re-established per operation.
type Session interface {
	// ActiveAccount reflects the wallet's current selection on every call;
	// it never caches across an account switch.
	ActiveAccount() (common.Address, error)
	SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error)
}

type SessionCfg struct {
	KeystoreDir string
	Passphrase  string
}

type sessionImpl struct {
	ks         *keystore.KeyStore
	passphrase string
}

// Connect opens the keystore and verifies an account is available.
// Returns domain.ErrConnection when no wallet can serve the session.
func Connect(cfg *SessionCfg) (Session, error) {
	ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	if len(ks.Accounts()) == 0 {
		return nil, domain.ErrConnection
	}
	return &sessionImpl{ks: ks, passphrase: cfg.Passphrase}, nil
}

func (s *sessionImpl) ActiveAccount() (common.Address, error) {
	// the keystore watches its directory, so this picks up added, removed
	// or reordered accounts
	accts := s.ks.Accounts()
	if len(accts) == 0 {
		return common.Address{}, domain.ErrConnection
	}
	return accts[0].Address, nil
}

func (s *sessionImpl) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	addr, err := s.ActiveAccount()
	if err != nil {
		return nil, err
	}
	return s.ks.SignTxWithPassphrase(accounts.Account{Address: addr}, s.passphrase, tx, chainId)
}
