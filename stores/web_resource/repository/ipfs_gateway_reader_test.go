package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/nftmart/goclient/base/ctx"
)

func Test_ipfsGatewayReaderRepo_Get(t *testing.T) {
	req := require.New(t)

	body := `{"name":"My NFT","image":"ipfs://QmImage"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ipfs/QmMeta" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewIpfsGatewayReaderRepo(http.Client{}, srv.URL+"/ipfs", 10*time.Second)

	b, err := r.Get(ctx, "QmMeta")
	req.NoError(err)
	req.Equal([]byte(body), b)

	_, err = r.Get(ctx, "QmMissing")
	req.Error(err)
}
