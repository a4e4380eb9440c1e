package usecase

import (
	"encoding/json"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/log"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/file"
	"github.com/nftmart/goclient/domain/metadata"
	"github.com/nftmart/goclient/service/pinata"
)

type MetadataUseCaseCfg struct {
	HttpReader domain.WebResourceReaderRepository
	IpfsReader domain.WebResourceReaderRepository
	File       file.Usecase
}

type metadataUseCase struct {
	httpReader domain.WebResourceReaderRepository
	ipfsReader domain.WebResourceReaderRepository
	file       file.Usecase
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) metadata.UseCase {
	return &metadataUseCase{
		httpReader: cfg.HttpReader,
		ipfsReader: cfg.IpfsReader,
		file:       cfg.File,
	}
}

func (u *metadataUseCase) Build(name, description, price, imageURI string) (*metadata.Document, error) {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(description) == "" ||
		strings.TrimSpace(price) == "" ||
		strings.TrimSpace(imageURI) == "" {
		return nil, domain.ErrValidation
	}
	return &metadata.Document{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       imageURI,
	}, nil
}

func (u *metadataUseCase) Upload(c bCtx.Ctx, doc *metadata.Document) (string, error) {
	if doc == nil {
		return "", domain.ErrValidation
	}
	uri, err := u.file.UploadJson(c, doc, pinata.PinOptions{
		Metadata: &pinata.PinataMetadata{Name: doc.Name},
	})
	if err != nil {
		c.WithField("err", err).Error("file.UploadJson failed")
		return "", err
	}
	return uri, nil
}

func (u *metadataUseCase) GetFromURI(c bCtx.Ctx, rawUrl string) (*metadata.Document, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	if pUrl.Scheme == "https" || pUrl.Scheme == "http" {
		data, err = u.httpReader.Get(c, rawUrl)
	} else if pUrl.Scheme == "ipfs" {
		data, err = u.ipfsReader.Get(c, strings.TrimPrefix(rawUrl, "ipfs://"))
	} else {
		return nil, domain.ErrUnsupportedSchema
	}

	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Error("failed to fetch")
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrFetch)
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	doc := &metadata.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, domain.ErrInvalidJsonFormat
	}
	return doc, nil
}
