package x86

// ConditionCode is the 4-bit condition field of Jcc, SETcc and CMOVcc.
type ConditionCode byte

const (
	CCOverflow    ConditionCode = 0
	CCNotOverflow ConditionCode = 1
	CCUnsignedLT  ConditionCode = 2
	CCUnsignedGTE ConditionCode = 3
	CCEq          ConditionCode = 4
	CCNeq         ConditionCode = 5
	CCUnsignedLTE ConditionCode = 6
	CCUnsignedGT  ConditionCode = 7
	CCSign        ConditionCode = 8
	CCNotSign     ConditionCode = 9
	CCParity      ConditionCode = 0xA
	CCNotParity   ConditionCode = 0xB
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

var ccSuffixes = [16]string{"o", "no", "b", "ae", "e", "ne", "be", "a", "s", "ns", "p", "np", "l", "ge", "le", "g"}

// Conditions come in complementary pairs which differ only in the low bit.
func (cc ConditionCode) Inverse() ConditionCode { return cc ^ 1 }

func (cc ConditionCode) String() string { return ccSuffixes[cc&0xf] }

var jccTable = [16]*Opcode{JO, JNO, JB, JAE, JE, JNE, JBE, JA, JS, JNS, JP, JNP, JL, JGE, JLE, JG}

var setccTable = [16]*Opcode{SETO, SETNO, SETB, SETAE, SETE, SETNE, SETBE, SETA, SETS, SETNS, SETP, SETNP, SETL, SETGE, SETLE, SETG}

var cmovccTable = [16]*Opcode{
	CMOVO, CMOVNO, CMOVB, CMOVAE, CMOVE, CMOVNE, CMOVBE, CMOVA,
	CMOVS, CMOVNS, CMOVP, CMOVNP, CMOVL, CMOVGE, CMOVLE, CMOVG,
}

// Get the conditional-jump opcode for a condition code.
func Jcc(cc ConditionCode) *Opcode { return jccTable[cc&0xf] }

// Get the conditional-set opcode for a condition code.
func SetCC(cc ConditionCode) *Opcode { return setccTable[cc&0xf] }

// Get the conditional-move opcode for a condition code.
func CMovCC(cc ConditionCode) *Opcode { return cmovccTable[cc&0xf] }

// Invert a condition code.
func Invcc(cc ConditionCode) ConditionCode { return cc.Inverse() }
