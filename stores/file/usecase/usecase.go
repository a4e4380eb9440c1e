package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/xerrors"

	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/file"
	"github.com/nftmart/goclient/service/pinata"
)

const (
	imgDataHeaderPrefix    = "data:image/"
	imgDataHeaderSuffix    = ";base64,"
	imgDataHeaderMaxLength = 50

	ipfsScheme = "ipfs://"
)

type impl struct {
	pinata pinata.Service
}

func New(pinata pinata.Service) file.Usecase {
	return &impl{
		pinata: pinata,
	}
}

func (im *impl) Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (uri string, err error) {
	reader, extension, err := im.parseImgData(imgData)
	if err != nil {
		c.WithField("err", err).Error("im.parseImgData failed")
		return "", xerrors.Errorf("%s: %w", err, domain.ErrValidation)
	}

	opts := []pinata.Options{}
	if pinOption.Metadata != nil {
		opts = append(opts, pinata.WithMetadata(*pinOption.Metadata))
	}
	if pinOption.Options != nil {
		opts = append(opts, pinata.WithOptions(*pinOption.Options))
	}
	hash, err := im.pinata.Pin(c, reader, extension, opts...)
	if err != nil {
		c.WithField("err", err).Error("im.pinata.Pin failed")
		return "", xerrors.Errorf("%s: %w", err, domain.ErrUpload)
	}
	c.WithField("hash", hash).Info("im.pinata.Pin success")
	return ipfsScheme + hash, nil
}

func (im *impl) UploadJson(c ctx.Ctx, doc interface{}, pinOption pinata.PinOptions) (uri string, err error) {
	opts := []pinata.Options{}
	if pinOption.Metadata != nil {
		opts = append(opts, pinata.WithMetadata(*pinOption.Metadata))
	}
	if pinOption.Options != nil {
		opts = append(opts, pinata.WithOptions(*pinOption.Options))
	}
	hash, err := im.pinata.PinJson(c, doc, opts...)
	if err != nil {
		c.WithField("err", err).Error("im.pinata.PinJson failed")
		return "", xerrors.Errorf("%s: %w", err, domain.ErrUpload)
	}
	c.WithField("hash", hash).Info("im.pinata.PinJson success")
	return ipfsScheme + hash, nil
}

func (im *impl) parseImgData(data string) (reader io.Reader, extension string, err error) {
	if !strings.HasPrefix(data, imgDataHeaderPrefix) {
		return nil, "", fmt.Errorf("image data has wrong prefix")
	}
	// search header suffix in a limited range
	searchLength := imgDataHeaderMaxLength
	if len(data) < searchLength {
		searchLength = len(data)
	}
	headerSuffixIdx := strings.Index(data[:searchLength], imgDataHeaderSuffix)
	if headerSuffixIdx == -1 {
		return nil, "", fmt.Errorf("can't find image data header suffix")
	}

	extension = data[len(imgDataHeaderPrefix):headerSuffixIdx]
	dataStartIdx := headerSuffixIdx + len(imgDataHeaderSuffix)
	decodedData, err := base64.StdEncoding.DecodeString(data[dataStartIdx:])
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(decodedData), extension, nil
}
