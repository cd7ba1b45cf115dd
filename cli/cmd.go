package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/linguohua/pinner/api"
	"github.com/linguohua/pinner/httpclient"
	"github.com/linguohua/pinner/node/config"
	"github.com/linguohua/pinner/node/pin"
)

var log = logging.Logger("cli")

// custom CLI error

type ErrCmdFailed struct {
	msg string
}

func (e *ErrCmdFailed) Error() string {
	return e.msg
}

func NewCliError(s string) error {
	return &ErrCmdFailed{s}
}

func IncorrectNumArgs(cctx *cli.Context) error {
	return NewCliError(fmt.Sprintf("incorrect number of arguments, got %d", cctx.NArg()))
}

var Commands = []*cli.Command{
	WithCategory("pinset", pinCmd),
}

func WithCategory(cat string, cmd *cli.Command) *cli.Command {
	cmd.Category = strings.ToUpper(cat)
	return cmd
}

// ReqContext returns a context canceled by SIGTERM/SIGINT/SIGHUP, so an
// in-flight command is abandoned when the user interrupts
func ReqContext(cctx *cli.Context) context.Context {
	ctx, done := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 2)
	go func() {
		<-sigChan
		done()
	}()
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	return ctx
}

// GetPinAPI builds the pin api from the config file, overridden by the
// --api and --token app flags
func GetPinAPI(cctx *cli.Context) (api.Pin, error) {
	cfgPath, err := homedir.Expand(cctx.String("config"))
	if err != nil {
		return nil, xerrors.Errorf("expand config path: %w", err)
	}

	cfg, err := config.FromFile(cfgPath)
	if err != nil {
		return nil, err
	}

	if apiURL := cctx.String("api"); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if token := cctx.String("token"); token != "" {
		cfg.APIToken = token
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, xerrors.Errorf("parse timeout %s: %w", cfg.Timeout, err)
	}

	opts := []httpclient.Option{httpclient.WithTimeout(timeout)}
	if cfg.APIToken != "" {
		opts = append(opts, httpclient.WithToken(cfg.APIToken))
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, httpclient.WithInsecureSkipVerify())
	}

	client, err := httpclient.New(cfg.APIURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Debugf("using daemon api %s", cfg.APIURL)
	return pin.NewManager(client), nil
}
