//go:build unit

package network

import (
	"testing"

	"golang-vlandevd/internal/pkg/attrs"
	"golang-vlandevd/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netlink/nl"
)

var settingsSchema = attrs.Schema{
	{Name: "mtu", Kind: attrs.Int},
	{Name: "macaddr", Kind: attrs.String},
	{Name: "txqueuelen", Kind: attrs.Int},
}

func TestInitSettings(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		adapter := NewAdapter()
		set := attrs.Decode([]byte("mtu: 9000\nmacaddr: 02:00:00:00:00:01\ntxqueuelen: 500\n"), settingsSchema)

		adapter.InitSettings("br-lan.10", set)

		s := adapter.settings["br-lan.10"]
		assert.Equal(t, 9000, s.mtu)
		assert.Equal(t, 500, s.txqlen)
		assert.Equal(t, "02:00:00:00:00:01", s.mac.String())
	})

	t.Run("InvalidMacSkipped", func(t *testing.T) {
		adapter := NewAdapter()
		set := attrs.Decode([]byte("macaddr: not-a-mac\n"), settingsSchema)

		adapter.InitSettings("br-lan.10", set)

		s := adapter.settings["br-lan.10"]
		assert.Nil(t, s.mac)
	})

	t.Run("ReplacesPriorSettings", func(t *testing.T) {
		adapter := NewAdapter()
		adapter.InitSettings("br-lan.10", attrs.Decode([]byte("mtu: 9000\n"), settingsSchema))
		adapter.InitSettings("br-lan.10", attrs.Decode([]byte("txqueuelen: 100\n"), settingsSchema))

		s := adapter.settings["br-lan.10"]
		assert.Zero(t, s.mtu)
		assert.Equal(t, 100, s.txqlen)
	})
}

func TestVlanProtocol(t *testing.T) {
	assert.Equal(t, netlink.VLAN_PROTOCOL_8021Q, vlanProtocol(types.Proto8021Q))
	assert.Equal(t, netlink.VLAN_PROTOCOL_8021AD, vlanProtocol(types.Proto8021AD))
}

func TestAddQosTable(t *testing.T) {
	table := nl.NewRtAttr(nl.IFLA_VLAN_INGRESS_QOS, nil)
	addQosTable(table, []types.QosMapping{{From: 1, To: 2}, {From: 7, To: 0}})

	ser := table.Serialize()
	// Outer header plus two nested 12-byte mapping attributes.
	require.Len(t, ser, 4+2*12)

	native := nl.NativeEndian()
	// First nested attribute: length, type, from, to.
	assert.Equal(t, uint16(12), native.Uint16(ser[4:6]))
	assert.Equal(t, uint16(iflaVlanQosMapping), native.Uint16(ser[6:8]))
	assert.Equal(t, uint32(1), native.Uint32(ser[8:12]))
	assert.Equal(t, uint32(2), native.Uint32(ser[12:16]))
	assert.Equal(t, uint32(7), native.Uint32(ser[20:24]))
	assert.Equal(t, uint32(0), native.Uint32(ser[24:28]))
}
