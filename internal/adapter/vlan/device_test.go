//go:build unit

package vlan

import (
	"errors"
	"testing"

	"golang-vlandevd/internal/adapter/registry"
	"golang-vlandevd/internal/mock"
	"golang-vlandevd/internal/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testRig wires a device to a real registry and mocked infrastructure.
type testRig struct {
	reg  *registry.Registry
	link *mock.MockLinkMechanism
	ops  *mock.MockDeviceOps
	dev  *Device
}

// newTestRig creates a 802.1q device bound to parent eth0, which is
// already present in the registry.
func newTestRig(t *testing.T, ctrl *gomock.Controller, raw string) *testRig {
	t.Helper()

	reg := registry.New()
	link := mock.NewMockLinkMechanism(ctrl)
	ops := mock.NewMockDeviceOps(ctrl)
	ops.EXPECT().InitSettings(gomock.Any(), gomock.Any()).AnyTimes()

	reg.Resolve("eth0", true)
	reg.SetPresent("eth0", true)

	dev := NewDevice("br-lan.10", Types()[0], reg, link, ops, []byte(raw))
	reg.Resolve(dev.Name(), true)
	dev.ConfigInit()

	return &testRig{reg: reg, link: link, ops: ops, dev: dev}
}

const testRaw = "type: 8021q\nifname: eth0\nvid: 10\n"

func TestActivate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)

		gomock.InOrder(
			rig.link.EXPECT().CreateLink("br-lan.10", "eth0", rig.dev.Config()).Return(nil),
			rig.ops.EXPECT().SetState("br-lan.10", true).Return(nil),
		)

		require.NoError(t, rig.dev.Activate())
		assert.Equal(t, StateUp, rig.dev.State())

		// The parent is exclusively held while up.
		assert.ErrorIs(t, rig.reg.Claim("eth0", "someone-else"), port.ErrParentUnavailable)
	})

	t.Run("ParentAbsent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)
		rig.reg.SetPresent("eth0", false)

		err := rig.dev.Activate()
		assert.ErrorIs(t, err, port.ErrParentUnavailable)
		assert.Equal(t, StateDown, rig.dev.State())
	})

	t.Run("NoParentDeclared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, "type: 8021q\nvid: 10\n")

		err := rig.dev.Activate()
		assert.ErrorIs(t, err, port.ErrParentUnavailable)
		assert.Equal(t, StateDown, rig.dev.State())
	})

	t.Run("CreateLinkFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)

		createErr := errors.New("device or resource busy")
		rig.link.EXPECT().CreateLink("br-lan.10", "eth0", gomock.Any()).Return(createErr)

		err := rig.dev.Activate()
		assert.ErrorIs(t, err, createErr)
		assert.Equal(t, StateDown, rig.dev.State())

		// The claim was rolled back: another party can claim immediately.
		assert.NoError(t, rig.reg.Claim("eth0", "someone-else"))
	})

	t.Run("BringUpFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)

		upErr := errors.New("no carrier")
		gomock.InOrder(
			rig.link.EXPECT().CreateLink("br-lan.10", "eth0", gomock.Any()).Return(nil),
			rig.ops.EXPECT().SetState("br-lan.10", true).Return(upErr),
			rig.link.EXPECT().DestroyLink("br-lan.10"),
		)

		err := rig.dev.Activate()
		assert.ErrorIs(t, err, upErr)
		assert.Equal(t, StateDown, rig.dev.State())
		assert.NoError(t, rig.reg.Claim("eth0", "someone-else"))
	})

	t.Run("AlreadyUp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)

		rig.link.EXPECT().CreateLink("br-lan.10", "eth0", gomock.Any()).Return(nil)
		rig.ops.EXPECT().SetState("br-lan.10", true).Return(nil)

		require.NoError(t, rig.dev.Activate())
		require.NoError(t, rig.dev.Activate())
		assert.Equal(t, StateUp, rig.dev.State())
	})
}

func TestDeactivate(t *testing.T) {
	activate := func(t *testing.T, rig *testRig) {
		t.Helper()
		rig.link.EXPECT().CreateLink("br-lan.10", "eth0", gomock.Any()).Return(nil)
		rig.ops.EXPECT().SetState("br-lan.10", true).Return(nil)
		require.NoError(t, rig.dev.Activate())
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)
		activate(t, rig)

		gomock.InOrder(
			rig.ops.EXPECT().SetState("br-lan.10", false).Return(nil),
			rig.link.EXPECT().DestroyLink("br-lan.10"),
		)

		rig.dev.Deactivate()
		assert.Equal(t, StateDown, rig.dev.State())
		assert.NoError(t, rig.reg.Claim("eth0", "someone-else"))
	})

	t.Run("BringDownFailureIsSwallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)
		activate(t, rig)

		// Teardown is best-effort: the down failure is discarded and
		// link destruction and claim release still run exactly once.
		gomock.InOrder(
			rig.ops.EXPECT().SetState("br-lan.10", false).Return(errors.New("operation not supported")),
			rig.link.EXPECT().DestroyLink("br-lan.10").Times(1),
		)

		rig.dev.Deactivate()
		assert.Equal(t, StateDown, rig.dev.State())
		assert.NoError(t, rig.reg.Claim("eth0", "someone-else"))
	})
}

func TestPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rig := newTestRig(t, ctrl, testRaw)

	assert.True(t, rig.dev.Present())

	rig.reg.SetPresent("eth0", false)
	assert.False(t, rig.dev.Present())

	rig.reg.SetPresent("eth0", true)
	assert.True(t, rig.dev.Present())

	// Up/Down link events are not presence changes and are ignored.
	rig.reg.SetLinkState("eth0", false)
	assert.True(t, rig.dev.Present())
}

func TestOnPresenceChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rig := newTestRig(t, ctrl, testRaw)

	var got []bool
	rig.dev.OnPresenceChange(func(_ *Device, present bool) {
		got = append(got, present)
	})

	rig.reg.SetPresent("eth0", false)
	rig.reg.SetPresent("eth0", true)
	assert.Equal(t, []bool{false, true}, got)
}

func TestClose(t *testing.T) {
	t.Run("RemovesObserver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rig := newTestRig(t, ctrl, testRaw)

		rig.dev.Close()
		rig.reg.SetPresent("eth0", false)
		// The device no longer observes the parent.
		assert.True(t, rig.dev.Present())
	})

	t.Run("SafeWhenNeverBound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reg := registry.New()
		link := mock.NewMockLinkMechanism(ctrl)
		ops := mock.NewMockDeviceOps(ctrl)
		ops.EXPECT().InitSettings(gomock.Any(), gomock.Any()).AnyTimes()

		dev := NewDevice("br-lan.10", Types()[0], reg, link, ops, []byte("type: 8021q\n"))
		dev.Close()
		dev.Close()
	})
}

func TestDumpInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rig := newTestRig(t, ctrl, testRaw)

	rig.ops.EXPECT().DumpInfo("br-lan.10").Return(map[string]any{"mtu": 1500}, nil)

	info, err := rig.dev.DumpInfo()
	require.NoError(t, err)
	assert.Equal(t, 1500, info["mtu"])
	assert.Equal(t, "eth0", info["parent"])
}
