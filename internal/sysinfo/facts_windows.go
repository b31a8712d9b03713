//go:build windows

package sysinfo

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemPowerStatus = kernel32.NewProc("GetSystemPowerStatus")
)

type systemPowerStatus struct {
	ACLineStatus        byte
	BatteryFlag         byte
	BatteryLifePercent  byte
	SystemStatusFlag    byte
	BatteryLifeTime     uint32
	BatteryFullLifeTime uint32
}

// onACPower queries GetSystemPowerStatus. ACLineStatus is 1 when the AC
// adapter is attached and 255 when unknown; unknown counts as attached so
// desktops without a battery are not blocked.
func onACPower() bool {
	var st systemPowerStatus
	r, _, _ := procGetSystemPowerStatus.Call(uintptr(unsafe.Pointer(&st)))
	if r == 0 {
		return true
	}
	return st.ACLineStatus != 0
}

// installDate reads the install timestamp Windows records at setup time.
func installDate() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()
	secs, _, err := k.GetIntegerValue("InstallDate")
	if err != nil || secs == 0 {
		return ""
	}
	return time.Unix(int64(secs), 0).Format("2006-01-02")
}

func deviceModel() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()
	model, _, err := k.GetStringValue("SystemProductName")
	if err != nil {
		return ""
	}
	return model
}
