// Package network provides the netlink-backed adapter for the link
// mechanism and generic device operations.
package network

import (
	"fmt"
	"net"
	"sync"

	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netlink/nl"
	"golang.org/x/sys/unix"

	"golang-vlandevd/internal/pkg/attrs"
	"golang-vlandevd/internal/pkg/logging"
	"golang-vlandevd/internal/port"
	"golang-vlandevd/internal/types"
)

// linkSettings are the generic interface settings recorded by
// InitSettings and applied when the link is created.
type linkSettings struct {
	mtu    int
	mac    net.HardwareAddr
	txqlen int
}

// Adapter implements the LinkMechanism and DeviceOps ports using the
// vishvananda/netlink library.
type Adapter struct {
	mu       sync.Mutex
	settings map[string]linkSettings
}

// Ensure Adapter implements both ports
var (
	_ port.LinkMechanism = (*Adapter)(nil)
	_ port.DeviceOps     = (*Adapter)(nil)
)

// NewAdapter creates a new netlink adapter.
func NewAdapter() *Adapter {
	return &Adapter{settings: make(map[string]linkSettings)}
}

// InitSettings records the generic interface settings for name. Values
// that fail to parse are skipped with a warning.
func (a *Adapter) InitSettings(name string, set attrs.AttrSet) {
	logger := logging.WithComponentAndDevice("netlink", name)

	var s linkSettings
	s.txqlen = -1
	if v, ok := set.Int("mtu"); ok {
		s.mtu = int(v)
	}
	if v, ok := set.Int("txqueuelen"); ok {
		s.txqlen = int(v)
	}
	if v, ok := set.String("macaddr"); ok {
		mac, err := net.ParseMAC(v)
		if err != nil {
			logger.WithError(err).Warn("Ignoring invalid macaddr")
		} else {
			s.mac = mac
		}
	}

	a.mu.Lock()
	a.settings[name] = s
	a.mu.Unlock()
}

// CreateLink creates the VLAN link name on top of parent. The recorded
// generic settings are folded into the link attributes, and the QoS
// mapping tables are applied as a follow-up request. Creation is atomic:
// if the mappings cannot be applied the link is removed again.
func (a *Adapter) CreateLink(name, parent string, cfg types.VlanConfig) error {
	parentLink, err := netlink.LinkByName(parent)
	if err != nil {
		return fmt.Errorf("failed to get parent link %s: %w", parent, err)
	}

	la := netlink.NewLinkAttrs()
	la.Name = name
	la.ParentIndex = parentLink.Attrs().Index

	a.mu.Lock()
	s, ok := a.settings[name]
	a.mu.Unlock()
	if ok {
		if s.mtu > 0 {
			la.MTU = s.mtu
		}
		if s.txqlen >= 0 {
			la.TxQLen = s.txqlen
		}
		if s.mac != nil {
			la.HardwareAddr = s.mac
		}
	}

	vlan := &netlink.Vlan{
		LinkAttrs:    la,
		VlanId:       int(cfg.VID),
		VlanProtocol: vlanProtocol(cfg.Protocol),
	}
	if err := netlink.LinkAdd(vlan); err != nil {
		return fmt.Errorf("failed to add vlan link %s: %w", name, err)
	}

	if len(cfg.IngressQosMaps) > 0 || len(cfg.EgressQosMaps) > 0 {
		if err := applyQosMaps(vlan.Attrs().Index, cfg); err != nil {
			a.DestroyLink(name)
			return fmt.Errorf("failed to apply qos mappings on %s: %w", name, err)
		}
	}

	return nil
}

// DestroyLink removes the link. A link that is already gone is fine.
func (a *Adapter) DestroyLink(name string) {
	logger := logging.WithComponentAndDevice("netlink", name)

	link, err := netlink.LinkByName(name)
	if err != nil {
		logger.WithError(err).Debug("Link already gone")
		return
	}
	if err := netlink.LinkDel(link); err != nil {
		logger.WithError(err).Warn("Failed to delete link")
	}
}

// SetState brings the interface up or down.
func (a *Adapter) SetState(name string, up bool) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("failed to get link %s: %w", name, err)
	}

	if up {
		if err := netlink.LinkSetUp(link); err != nil {
			return fmt.Errorf("failed to set link %s up: %w", name, err)
		}
		return nil
	}
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link %s down: %w", name, err)
	}
	return nil
}

// DumpInfo returns structured information about the interface.
func (a *Adapter) DumpInfo(name string) (map[string]any, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get link %s: %w", name, err)
	}

	la := link.Attrs()
	return map[string]any{
		"ifindex":    la.Index,
		"mtu":        la.MTU,
		"macaddr":    la.HardwareAddr.String(),
		"txqueuelen": la.TxQLen,
		"operstate":  la.OperState.String(),
	}, nil
}

func vlanProtocol(p types.VlanProtocol) netlink.VlanProtocol {
	if p == types.Proto8021AD {
		return netlink.VLAN_PROTOCOL_8021AD
	}
	return netlink.VLAN_PROTOCOL_8021Q
}

// IFLA_VLAN_QOS_MAPPING nests inside IFLA_VLAN_{IN,E}GRESS_QOS; the nl
// package does not name it.
const iflaVlanQosMapping = 1

// applyQosMaps sends a link-modify request carrying the priority remap
// tables, which the netlink library cannot express on LinkAdd.
func applyQosMaps(index int, cfg types.VlanConfig) error {
	req := nl.NewNetlinkRequest(unix.RTM_NEWLINK, unix.NLM_F_ACK)

	msg := nl.NewIfInfomsg(unix.AF_UNSPEC)
	msg.Index = int32(index)
	req.AddData(msg)

	linkInfo := nl.NewRtAttr(unix.IFLA_LINKINFO, nil)
	linkInfo.AddRtAttr(nl.IFLA_INFO_KIND, nl.NonZeroTerminated("vlan"))
	data := linkInfo.AddRtAttr(nl.IFLA_INFO_DATA, nil)

	if len(cfg.IngressQosMaps) > 0 {
		addQosTable(data.AddRtAttr(nl.IFLA_VLAN_INGRESS_QOS, nil), cfg.IngressQosMaps)
	}
	if len(cfg.EgressQosMaps) > 0 {
		addQosTable(data.AddRtAttr(nl.IFLA_VLAN_EGRESS_QOS, nil), cfg.EgressQosMaps)
	}
	req.AddData(linkInfo)

	_, err := req.Execute(unix.NETLINK_ROUTE, 0)
	return err
}

func addQosTable(table *nl.RtAttr, mappings []types.QosMapping) {
	native := nl.NativeEndian()
	for _, m := range mappings {
		buf := make([]byte, 8)
		native.PutUint32(buf[0:4], m.From)
		native.PutUint32(buf[4:8], m.To)
		table.AddRtAttr(iflaVlanQosMapping, buf)
	}
}
