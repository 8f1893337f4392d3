package cardparser

// twoCardholders is the text of a statement holding two cardholder blocks.
const twoCardholders = `ABC Bank
Cardholder Name: Alice Smith
Card Number: XXXX XXXX XXXX 1234
Statement Period: 01-Dec-2024 to 31-Dec-2024
Payment Due Date: 05-Jan-2025
Total Amount Due: ₹12,345.67

Cardholder Name: Bob Jones
Card Number: XXXX-5678
Billing Cycle: 01-Dec-2024 to 31-Dec-2024
Payment Due: 10-Jan-2025
Total Amount Due: ₹ 890.00
`
