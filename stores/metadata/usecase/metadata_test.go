package usecase

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/domain"
	fileMocks "github.com/nftmart/goclient/domain/file/mocks"
	"github.com/nftmart/goclient/domain/metadata"
	"github.com/nftmart/goclient/domain/mocks"
)

func Test_metadataUseCase_Build(t *testing.T) {
	u := NewMetadataUseCase(&MetadataUseCaseCfg{})
	tests := []struct {
		name        string
		docName     string
		description string
		price       string
		imageURI    string
		want        *metadata.Document
		wantErr     error
	}{
		{
			name:        "complete",
			docName:     "My NFT",
			description: "a fine piece",
			price:       "0.03",
			imageURI:    "ipfs://QmImage",
			want: &metadata.Document{
				Name:        "My NFT",
				Description: "a fine piece",
				Price:       "0.03",
				Image:       "ipfs://QmImage",
			},
		},
		{
			name:        "missing name",
			description: "a fine piece",
			price:       "0.03",
			imageURI:    "ipfs://QmImage",
			wantErr:     domain.ErrValidation,
		},
		{
			name:        "blank image locator",
			docName:     "My NFT",
			description: "a fine piece",
			price:       "0.03",
			imageURI:    "   ",
			wantErr:     domain.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := u.Build(tt.docName, tt.description, tt.price, tt.imageURI)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_metadataUseCase_Upload(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	doc := &metadata.Document{Name: "My NFT", Description: "d", Price: "1", Image: "ipfs://QmImage"}

	fu := &fileMocks.Usecase{}
	fu.On("UploadJson", mock.Anything, doc, mock.Anything).Return("ipfs://QmMeta", nil).Once()

	u := NewMetadataUseCase(&MetadataUseCaseCfg{File: fu})
	uri, err := u.Upload(c, doc)
	req.NoError(err)
	req.Equal("ipfs://QmMeta", uri)
	fu.AssertExpectations(t)
}

func Test_metadataUseCase_GetFromURI(t *testing.T) {
	rawDoc := []byte(`{"name":"My NFT","description":"a fine piece","price":"0.03","image":"ipfs://QmImage"}`)
	wantDoc := &metadata.Document{
		Name:        "My NFT",
		Description: "a fine piece",
		Price:       "0.03",
		Image:       "ipfs://QmImage",
	}
	tests := []struct {
		name         string
		calledReader string
		url          string
		calledUrl    string
		data         []byte
		readerErr    error
		want         *metadata.Document
		wantErr      error
	}{
		{
			name:         "https",
			calledReader: "http",
			url:          "https://gateway.pinata.cloud/ipfs/QmMeta",
			calledUrl:    "https://gateway.pinata.cloud/ipfs/QmMeta",
			data:         rawDoc,
			want:         wantDoc,
		},
		{
			name:         "ipfs locator strips scheme",
			calledReader: "ipfs",
			url:          "ipfs://QmMeta",
			calledUrl:    "QmMeta",
			data:         rawDoc,
			want:         wantDoc,
		},
		{
			name:    "unsupported schema",
			url:     "ftp://somewhere/metadata.json",
			wantErr: domain.ErrUnsupportedSchema,
		},
		{
			name:         "reader failure",
			calledReader: "ipfs",
			url:          "ipfs://QmMeta",
			calledUrl:    "QmMeta",
			readerErr:    errors.New("gateway timeout"),
			wantErr:      domain.ErrFetch,
		},
		{
			name:         "invalid json",
			calledReader: "http",
			url:          "https://somewhere/metadata.json",
			calledUrl:    "https://somewhere/metadata.json",
			data:         []byte(`not json at all`),
			wantErr:      domain.ErrInvalidJsonFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readers := map[string]domain.WebResourceReaderRepository{
				"http": &mocks.WebResourceReaderRepository{},
				"ipfs": &mocks.WebResourceReaderRepository{},
			}
			if len(tt.calledReader) > 0 {
				readers[tt.calledReader].(*mocks.WebResourceReaderRepository).
					On("Get", mock.Anything, tt.calledUrl).
					Return(tt.data, tt.readerErr)
			}
			u := NewMetadataUseCase(&MetadataUseCaseCfg{
				HttpReader: readers["http"],
				IpfsReader: readers["ipfs"],
			})
			ctx := bCtx.Background()
			got, err := u.GetFromURI(ctx, tt.url)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("metadataUseCase.GetFromURI() = %v, want %v", got, tt.want)
			}
		})
	}
}
