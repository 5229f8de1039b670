package hal

import "fmt"

// Command is an ILI9163 controller command byte.
type Command uint8

const (
	CmdNOP                   Command = 0x00
	CmdSoftReset             Command = 0x01
	CmdGetRedChannel         Command = 0x06
	CmdGetGreenChannel       Command = 0x07
	CmdGetBlueChannel        Command = 0x08
	CmdGetPowerMode          Command = 0x0A
	CmdGetAddressMode        Command = 0x0B
	CmdGetPixelFormat        Command = 0x0C
	CmdGetDisplayMode        Command = 0x0D
	CmdGetSignalMode         Command = 0x0E
	CmdGetDiagnosticResult   Command = 0x0F
	CmdEnterSleepMode        Command = 0x10
	CmdExitSleepMode         Command = 0x11
	CmdEnterPartialMode      Command = 0x12
	CmdEnterNormalMode       Command = 0x13
	CmdExitInvertMode        Command = 0x20
	CmdEnterInvertMode       Command = 0x21
	CmdSetGammaCurve         Command = 0x26
	CmdSetDisplayOff         Command = 0x28
	CmdSetDisplayOn          Command = 0x29
	CmdSetColumnAddress      Command = 0x2A
	CmdSetPageAddress        Command = 0x2B
	CmdWriteMemoryStart      Command = 0x2C
	CmdWriteLUT              Command = 0x2D
	CmdReadMemoryStart       Command = 0x2E
	CmdSetPartialArea        Command = 0x30
	CmdSetScrollArea         Command = 0x33
	CmdSetTearOff            Command = 0x34
	CmdSetTearOn             Command = 0x35
	CmdSetAddressMode        Command = 0x36
	CmdSetScrollStart        Command = 0x37
	CmdExitIdleMode          Command = 0x38
	CmdEnterIdleMode         Command = 0x39
	CmdSetPixelFormat        Command = 0x3A
	CmdWriteMemoryContinue   Command = 0x3C
	CmdReadMemoryContinue    Command = 0x3E
	CmdSetTearScanline       Command = 0x44
	CmdGetScanline           Command = 0x45
	CmdFrameRateControl1     Command = 0xB1
	CmdFrameRateControl2     Command = 0xB2
	CmdFrameRateControl3     Command = 0xB3
	CmdDisplayInversion      Command = 0xB4
	CmdSourceDriverDirection Command = 0xB7
	CmdGateDriverDirection   Command = 0xB8
	CmdPowerControl1         Command = 0xC0
	CmdPowerControl2         Command = 0xC1
	CmdPowerControl3         Command = 0xC2
	CmdPowerControl4         Command = 0xC3
	CmdPowerControl5         Command = 0xC4
	CmdVCOMControl1          Command = 0xC5
	CmdVCOMControl2          Command = 0xC6
	CmdVCOMOffsetControl     Command = 0xC7
	CmdWriteID4Value         Command = 0xD3
	CmdNVMemoryFunction1     Command = 0xD7
	CmdReadID1               Command = 0xDA
	CmdReadID2               Command = 0xDB
	CmdReadID3               Command = 0xDC
	CmdNVMemoryFunction2     Command = 0xDE
	CmdPositiveGammaCorrect  Command = 0xE0
	CmdNegativeGammaCorrect  Command = 0xE1
	CmdGamRSel               Command = 0xF2
)

var commandNames = map[Command]string{
	CmdNOP:                   "NOP",
	CmdSoftReset:             "SOFT_RESET",
	CmdGetRedChannel:         "GET_RED_CHANNEL",
	CmdGetGreenChannel:       "GET_GREEN_CHANNEL",
	CmdGetBlueChannel:        "GET_BLUE_CHANNEL",
	CmdGetPowerMode:          "GET_POWER_MODE",
	CmdGetAddressMode:        "GET_ADDRESS_MODE",
	CmdGetPixelFormat:        "GET_PIXEL_FORMAT",
	CmdGetDisplayMode:        "GET_DISPLAY_MODE",
	CmdGetSignalMode:         "GET_SIGNAL_MODE",
	CmdGetDiagnosticResult:   "GET_DIAGNOSTIC_RESULT",
	CmdEnterSleepMode:        "ENTER_SLEEP_MODE",
	CmdExitSleepMode:         "EXIT_SLEEP_MODE",
	CmdEnterPartialMode:      "ENTER_PARTIAL_MODE",
	CmdEnterNormalMode:       "ENTER_NORMAL_MODE",
	CmdExitInvertMode:        "EXIT_INVERT_MODE",
	CmdEnterInvertMode:       "ENTER_INVERT_MODE",
	CmdSetGammaCurve:         "SET_GAMMA_CURVE",
	CmdSetDisplayOff:         "SET_DISPLAY_OFF",
	CmdSetDisplayOn:          "SET_DISPLAY_ON",
	CmdSetColumnAddress:      "SET_COLUMN_ADDRESS",
	CmdSetPageAddress:        "SET_PAGE_ADDRESS",
	CmdWriteMemoryStart:      "WRITE_MEMORY_START",
	CmdWriteLUT:              "WRITE_LUT",
	CmdReadMemoryStart:       "READ_MEMORY_START",
	CmdSetPartialArea:        "SET_PARTIAL_AREA",
	CmdSetScrollArea:         "SET_SCROLL_AREA",
	CmdSetTearOff:            "SET_TEAR_OFF",
	CmdSetTearOn:             "SET_TEAR_ON",
	CmdSetAddressMode:        "SET_ADDRESS_MODE",
	CmdSetScrollStart:        "SET_SCROLL_START",
	CmdExitIdleMode:          "EXIT_IDLE_MODE",
	CmdEnterIdleMode:         "ENTER_IDLE_MODE",
	CmdSetPixelFormat:        "SET_PIXEL_FORMAT",
	CmdWriteMemoryContinue:   "WRITE_MEMORY_CONTINUE",
	CmdReadMemoryContinue:    "READ_MEMORY_CONTINUE",
	CmdSetTearScanline:       "SET_TEAR_SCANLINE",
	CmdGetScanline:           "GET_SCANLINE",
	CmdFrameRateControl1:     "FRAME_RATE_CONTROL1",
	CmdFrameRateControl2:     "FRAME_RATE_CONTROL2",
	CmdFrameRateControl3:     "FRAME_RATE_CONTROL3",
	CmdDisplayInversion:      "DISPLAY_INVERSION",
	CmdSourceDriverDirection: "SOURCE_DRIVER_DIRECTION",
	CmdGateDriverDirection:   "GATE_DRIVER_DIRECTION",
	CmdPowerControl1:         "POWER_CONTROL1",
	CmdPowerControl2:         "POWER_CONTROL2",
	CmdPowerControl3:         "POWER_CONTROL3",
	CmdPowerControl4:         "POWER_CONTROL4",
	CmdPowerControl5:         "POWER_CONTROL5",
	CmdVCOMControl1:          "VCOM_CONTROL1",
	CmdVCOMControl2:          "VCOM_CONTROL2",
	CmdVCOMOffsetControl:     "VCOM_OFFSET_CONTROL",
	CmdWriteID4Value:         "WRITE_ID4_VALUE",
	CmdNVMemoryFunction1:     "NV_MEMORY_FUNCTION1",
	CmdReadID1:               "READ_ID1",
	CmdReadID2:               "READ_ID2",
	CmdReadID3:               "READ_ID3",
	CmdNVMemoryFunction2:     "NV_MEMORY_FUNCTION2",
	CmdPositiveGammaCorrect:  "POSITIVE_GAMMA_CORRECT",
	CmdNegativeGammaCorrect:  "NEGATIVE_GAMMA_CORRECT",
	CmdGamRSel:               "GAM_R_SEL",
}

// Known reports whether c is part of the controller command set.
func (c Command) Known() bool {
	_, ok := commandNames[c]
	return ok
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CMD_%02X", uint8(c))
}
