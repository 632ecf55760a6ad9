// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package failure

import (
	"fmt"
)

// BelowRentExemption is returned when a transfer would leave a fresh
// receiving account below the ledger's rent-exempt minimum balance.
type BelowRentExemption struct {
	Description Description
	Receiver    string
	Amount      uint64
	Minimum     uint64
}

func (b BelowRentExemption) Error() string {
	return fmt.Sprintf("account may not be rent exempt (receiver: %s, amount: %d, minimum: %d): %s", b.Receiver, b.Amount, b.Minimum, b.Description)
}
