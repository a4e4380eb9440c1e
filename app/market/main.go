package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/goroutine"
	"github.com/nftmart/goclient/base/log"
	"github.com/nftmart/goclient/base/unit"
	bValidator "github.com/nftmart/goclient/base/validator"
	"github.com/nftmart/goclient/domain"
	mmiddleware "github.com/nftmart/goclient/middleware"
	"github.com/nftmart/goclient/service/chain"
	"github.com/nftmart/goclient/service/chain/contract"
	"github.com/nftmart/goclient/service/pinata"
	"github.com/nftmart/goclient/service/wallet"
	catalog_delivery "github.com/nftmart/goclient/stores/catalog/delivery/http"
	catalog_usecase "github.com/nftmart/goclient/stores/catalog/usecase"
	file_usecase "github.com/nftmart/goclient/stores/file/usecase"
	listing_delivery "github.com/nftmart/goclient/stores/listing/delivery/http"
	listing_usecase "github.com/nftmart/goclient/stores/listing/usecase"
	metadata_usecase "github.com/nftmart/goclient/stores/metadata/usecase"
	web_resource_repository "github.com/nftmart/goclient/stores/web_resource/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	pinataService := pinata.New(viper.GetString("pinata.apiKey"), viper.GetString("pinata.apiSecret"))

	httpTimeout := viper.GetDuration("http.timeout")
	httpReader := web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil)
	var ipfsReader domain.WebResourceReaderRepository
	if nodeUrl := viper.GetString("ipfs.nodeUrl"); len(nodeUrl) > 0 {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeUrl), httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gatewayUrl"), httpTimeout)
	}

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:             rpcs,
		ReceiptPollInterval: viper.GetDuration("marketplace.receiptPollInterval"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	binding, err := domain.LoadContractBinding(viper.GetString("marketplace.bindingPath"))
	if err != nil {
		context.WithField("err", err).Panic("failed to load contract binding")
	}
	marketplaceChainId := domain.ChainId(viper.GetInt32("marketplace.chainId"))
	marketplace := contract.NewMarketplace(chainService, marketplaceChainId, binding)

	session, err := wallet.Connect(&wallet.SessionCfg{
		KeystoreDir: viper.GetString("wallet.keystoreDir"),
		Passphrase:  viper.GetString("wallet.passphrase"),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to connect wallet")
	}

	converter := unit.NewConverter(unit.EtherDecimals)

	// construct usecase and delivery
	file := file_usecase.New(pinataService)
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader: httpReader,
		IpfsReader: ipfsReader,
		File:       file,
	})
	listing := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		File:        file,
		Metadata:    metadata,
		Marketplace: marketplace,
		Session:     session,
		Converter:   converter,
	})
	catalog := catalog_usecase.NewCatalogUseCase(&catalog_usecase.CatalogUseCaseCfg{
		Marketplace:        marketplace,
		Metadata:           metadata,
		Converter:          converter,
		ResolveConcurrency: viper.GetInt("catalog.resolveConcurrency"),
	})

	listing_delivery.New(e, listing)
	catalog_delivery.New(e, catalog)

	goroutine.RecoverableGo(func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	sctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
