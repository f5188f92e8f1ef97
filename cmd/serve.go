package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang-vlandevd/internal/adapter/infrastructure/network"
	"golang-vlandevd/internal/adapter/registry"
	"golang-vlandevd/internal/adapter/vlan"
	"golang-vlandevd/internal/pkg/config"
	"golang-vlandevd/internal/pkg/logging"
	"golang-vlandevd/internal/pkg/metrics"
	"golang-vlandevd/internal/pkg/version"

	"github.com/spf13/cobra"
)

var (
	configFlag string
)

// buildDevices creates the declared VLAN devices and establishes their
// parent bindings.
func buildDevices(cfg *config.Config, reg *registry.Registry, net *network.Adapter) ([]*vlan.Device, error) {
	logger := logging.GetLogger()

	decls, err := cfg.DeviceDecls()
	if err != nil {
		return nil, err
	}

	typesByName := make(map[string]*vlan.DeviceType)
	for _, typ := range vlan.Types() {
		typesByName[typ.Name] = typ
	}

	var devices []*vlan.Device
	for name, decl := range decls {
		typ, ok := typesByName[decl.Type]
		if !ok {
			return nil, fmt.Errorf("device %s: unknown type %q", name, decl.Type)
		}

		device := vlan.NewDevice(name, typ, reg, net, net, decl.Raw)
		reg.Resolve(name, true)
		device.ConfigInit()
		logger.WithField("device", name).WithField("type", decl.Type).Info("Created VLAN device")
		devices = append(devices, device)
	}
	return devices, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Manage the configured VLAN sub-interfaces",
	Run: func(cmd *cobra.Command, args []string) {
		// Load and validate configuration
		cfg, err := config.Load(configFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			return
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).WithField("version", version.Short()).Info("Starting daemon")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		if cfg.Metrics.Listen != "" {
			go func() {
				logger.WithField("listen", cfg.Metrics.Listen).Info("Serving metrics")
				if err := http.ListenAndServe(cfg.Metrics.Listen, metrics.Handler()); err != nil {
					logger.WithError(err).Error("Metrics listener failed")
				}
			}()
		}

		reg := registry.New()
		netAdapter := network.NewAdapter()

		devices, err := buildDevices(cfg, reg, netAdapter)
		if err != nil {
			logger.WithError(err).Error("Failed to create devices")
			return
		}

		// Presence changes are collected here and reconciled after each
		// registry update, keeping all device transitions on this
		// goroutine.
		changed := make(map[*vlan.Device]bool)
		for _, device := range devices {
			device.OnPresenceChange(func(d *vlan.Device, present bool) {
				changed[d] = present
			})
		}

		linkEvents := make(chan network.LinkEvent, 64)
		watcherErr := make(chan error, 1)
		go func() {
			watcherErr <- network.NewWatcher().Run(ctx, linkEvents)
		}()

		logger.WithField("device_count", len(devices)).Info("Managing VLAN devices")

		running := true
		for running {
			select {
			case <-ctx.Done():
				running = false
			case err := <-watcherErr:
				if err != nil && !errors.Is(err, context.Canceled) {
					logger.WithError(err).Error("Link watcher failed")
				}
				running = false
			case event := <-linkEvents:
				reg.SetPresent(event.Name, event.Present)
				if event.Present {
					reg.SetLinkState(event.Name, event.Up)
				}

				for device, present := range changed {
					delete(changed, device)
					if present && device.State() == vlan.StateDown {
						if err := device.Activate(); err != nil {
							logger.WithField("device", device.Name()).WithError(err).Error("Failed to activate device")
						}
					} else if !present && device.State() == vlan.StateUp {
						device.Deactivate()
					}
				}
			}
		}

		// Tear everything down before exit
		for _, device := range devices {
			if device.State() == vlan.StateUp {
				device.Deactivate()
			}
			device.Close()
		}
		logger.Info("All VLAN devices released")
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(serveCmd)
}
