package term

// CommandKind enumerates the discrete camera/loop commands decoded from
// raw input bytes.
type CommandKind int

const (
	CmdMoveForward CommandKind = iota
	CmdMoveRight
	CmdMoveUp
	CmdRotateYaw
	CmdRotatePitch
	CmdQuit
)

// Command is one decoded input action. Amount is a distance for moves and
// degrees for rotations.
type Command struct {
	Kind   CommandKind
	Amount float32
}

const (
	moveStep   = 0.5
	rotateStep = 10.0
)

var keyCommands = map[byte]Command{
	'w': {CmdMoveForward, moveStep},
	's': {CmdMoveForward, -moveStep},
	'd': {CmdMoveRight, moveStep},
	'a': {CmdMoveRight, -moveStep},
	'e': {CmdMoveUp, moveStep},
	'q': {CmdMoveUp, -moveStep},
	'l': {CmdRotateYaw, rotateStep},
	'h': {CmdRotateYaw, -rotateStep},
	'j': {CmdRotatePitch, rotateStep},
	'k': {CmdRotatePitch, -rotateStep},
	'x': {CmdQuit, 0},
}

// arrowCommands maps the final byte of CSI cursor sequences to the same
// actions as WASD.
var arrowCommands = map[byte]Command{
	'A': {CmdMoveForward, moveStep},
	'B': {CmdMoveForward, -moveStep},
	'C': {CmdMoveRight, moveStep},
	'D': {CmdMoveRight, -moveStep},
}

// DecodeInput translates a chunk of raw tty bytes into commands. Arrow
// keys arrive as ESC [ A..D; a lone escape quits.
func DecodeInput(buf []byte) []Command {
	var cmds []Command
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			if i+2 < len(buf) && buf[i+1] == '[' {
				if cmd, ok := arrowCommands[buf[i+2]]; ok {
					cmds = append(cmds, cmd)
				}
				i += 2
				continue
			}
			cmds = append(cmds, Command{Kind: CmdQuit})
			continue
		}
		if cmd, ok := keyCommands[b]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
